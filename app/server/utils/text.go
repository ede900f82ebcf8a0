package utils

import "strings"

// NormalizeTags 去掉首尾空白和空标签，按不区分大小写去重，保留首次出现的写法和顺序
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	res := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		res = append(res, tag)
	}
	return res
}

func CountWords(s string) int {
	return len(strings.Fields(s))
}
