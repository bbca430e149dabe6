package domain

import "fmt"

// GenerationCost is the number of credits one generation consumes.
const GenerationCost Credits = 1

type Credits int64

// ClampCredits converts a backend balance into a display value. The backend
// is authoritative; negative balances are shown as zero.
func ClampCredits(v int64) Credits {
	if v < 0 {
		return 0
	}
	return Credits(v)
}

func (c Credits) Exhausted() bool {
	return c <= 0
}

func (c Credits) Compact() string {
	return compactNumber(int64(c))
}

func (c Credits) String() string {
	if c == 1 {
		return "1 credit"
	}
	return fmt.Sprintf("%d credits", c)
}

func compactNumber(v int64) string {
	if v < 1_000 {
		return fmt.Sprintf("%d", v)
	}

	if v < 1_000_000 {
		return fmt.Sprintf("%.1fk", float64(v)/1_000)
	}

	return fmt.Sprintf("%.1fM", float64(v)/1_000_000)
}
