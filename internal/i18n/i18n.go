package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// 站点支持的语言
const (
	LocaleEN = "en-US"
	LocaleZH = "zh-CN"
)

// DefaultLocale 默认语言
const DefaultLocale = LocaleEN

// T 按语言取文案，缺失时回退默认语言，再缺失返回 key 本身
func T(locale, key string) string {
	normalized := Normalize(locale)
	if catalog, ok := catalogs[normalized]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if normalized != DefaultLocale {
		if msg, ok := catalogs[DefaultLocale][key]; ok {
			return msg
		}
	}
	return key
}

// Sprintf 按语言取格式化文案
func Sprintf(locale, key string, args ...interface{}) string {
	format := T(locale, key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Normalize 归一化语言标识
func Normalize(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	switch {
	case strings.HasPrefix(l, "zh"):
		return LocaleZH
	case strings.HasPrefix(l, "en"):
		return LocaleEN
	default:
		return DefaultLocale
	}
}

// ResolveLocale 从请求解析语言：query 参数优先，其次 Accept-Language
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if locale := strings.TrimSpace(c.Query("locale")); locale != "" {
		return Normalize(locale)
	}
	header := c.GetHeader("Accept-Language")
	if header == "" {
		return DefaultLocale
	}
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		return Normalize(tag)
	}
	return DefaultLocale
}
