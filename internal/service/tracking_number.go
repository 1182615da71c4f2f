package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/send-logistics/internal/constants"
)

const (
	trackingSuffixLength   = 12
	trackingGenerateRounds = 5
)

// trackingPrefix 按快递公司名称匹配单号前缀
func trackingPrefix(courierCompany string) string {
	for _, item := range constants.CourierPrefixes() {
		if strings.Contains(courierCompany, item.Keyword) {
			return item.Prefix
		}
	}
	return constants.TrackingPrefixFallback
}

// generateTrackingNumber 前缀 + 6 位日期 + 6 位随机数
func generateTrackingNumber(courierCompany string, now time.Time) string {
	datePart := now.Format("060102")
	return trackingPrefix(courierCompany) + datePart + randNumeric(trackingSuffixLength-len(datePart))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
