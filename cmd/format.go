package cmd

import (
	"fmt"
	"math"
	"strings"
)

func mm(v float64) string { return fmt.Sprintf("%.2f mm", v) }
func mm2(v float64) string { return fmt.Sprintf("%.2f mm²", v) }

func rad(v float64) string {
	return fmt.Sprintf("%.4f rad (%.2f°)", v, v*180/math.Pi)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func upper(s string) string { return strings.ToUpper(s) }
