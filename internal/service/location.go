package service

import "strings"

const (
	cityMarker          = "市"
	provinceMarker      = "省"
	cityLookbackRunes   = 5
	locationFallbackLen = 10
)

// extractCity 从寄件地址中粗略提取城市，用作首个物流节点的位置
func extractCity(address string) string {
	runes := []rune(address)
	idx := runeIndex(runes, []rune(cityMarker)[0])
	if idx < 0 {
		if len(runes) > locationFallbackLen {
			return string(runes[:locationFallbackLen])
		}
		return address
	}
	start := idx - cityLookbackRunes
	if start < 0 {
		start = 0
	}
	segment := string(runes[start : idx+1])
	if pos := strings.LastIndex(segment, provinceMarker); pos >= 0 {
		return segment[pos+len(provinceMarker):]
	}
	return segment
}

func runeIndex(runes []rune, target rune) int {
	for i, r := range runes {
		if r == target {
			return i
		}
	}
	return -1
}
