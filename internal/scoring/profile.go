package scoring

import (
	"fmt"

	"github.com/shopspring/decimal"

	"health-screen/internal/domain"
)

// Profile names.
const (
	ProfileExtended = "extended"
	ProfileCompact  = "compact"
)

// Weight is the share of one category in the overall score.
type Weight struct {
	Category domain.Category
	Share    decimal.Decimal
}

// Profile selects which categories are scored and how they are weighted.
// Weights of a profile sum to 1.
type Profile struct {
	Name    string
	Weights []Weight
}

// Extended scores all four categories.
var Extended = Profile{
	Name: ProfileExtended,
	Weights: []Weight{
		{Category: domain.CategoryMusculoskeletal, Share: decimal.RequireFromString("0.30")},
		{Category: domain.CategoryEyeHealth, Share: decimal.RequireFromString("0.20")},
		{Category: domain.CategoryMentalHealth, Share: decimal.RequireFromString("0.25")},
		{Category: domain.CategoryPhysicalActivity, Share: decimal.RequireFromString("0.25")},
	},
}

// Compact scores posture and eyes only.
var Compact = Profile{
	Name: ProfileCompact,
	Weights: []Weight{
		{Category: domain.CategoryMusculoskeletal, Share: decimal.RequireFromString("0.60")},
		{Category: domain.CategoryEyeHealth, Share: decimal.RequireFromString("0.40")},
	},
}

// ProfileByName resolves a configured profile name. Empty selects Extended.
func ProfileByName(name string) (Profile, error) {
	switch name {
	case "", ProfileExtended:
		return Extended, nil
	case ProfileCompact:
		return Compact, nil
	default:
		return Profile{}, fmt.Errorf("unknown scoring profile %q", name)
	}
}
