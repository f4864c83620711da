package helper

import (
	"fmt"
	"math"
	"strconv"
)

// Kurs tetap QAR→INR untuk estimasi tampilan, bukan kurs pasar live.
const QARToINRRate = 24.95010

// FormatQAR menampilkan nominal bulat dengan pemisah ribuan, mis. "QAR 2,500".
func FormatQAR(amount int) string {
	return "QAR " + groupThousands(amount)
}

// FormatINREquivalent menampilkan estimasi rupee dari nominal QAR, mis. "~ ₹62,375".
func FormatINREquivalent(amount int) string {
	inr := int(math.Round(float64(amount) * QARToINRRate))
	return fmt.Sprintf("~ ₹%s", groupThousands(inr))
}

func groupThousands(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
