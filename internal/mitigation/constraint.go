package mitigation

import (
    "fmt"
    "strings"
)

// Constraint names the rates that must be equal across sensitive groups.
type Constraint string

const (
    EqualizedOdds          Constraint = "equalized_odds"
    TruePositiveRateParity Constraint = "true_positive_rate_parity"
    DemographicParity      Constraint = "demographic_parity"
)

func ParseConstraint(s string) (Constraint, error) {
    c := Constraint(strings.ToLower(strings.TrimSpace(s)))
    if _, err := c.events(); err != nil { return "", err }
    return c, nil
}

// events lists the conditioning events the constraint compares groups on.
func (c Constraint) events() ([]string, error) {
    switch c {
    case EqualizedOdds:
        return []string{"label=0", "label=1"}, nil
    case TruePositiveRateParity:
        return []string{"label=1"}, nil
    case DemographicParity:
        return []string{"all"}, nil
    default:
        return nil, fmt.Errorf("%w: unknown constraint %q", ErrInvalidConfiguration, string(c))
    }
}

// eventOf maps a label to its event; ok is false when the example takes no
// part in the constraint.
func (c Constraint) eventOf(y int) (string, bool) {
    switch c {
    case EqualizedOdds:
        return fmt.Sprintf("label=%d", y), true
    case TruePositiveRateParity:
        if y == 1 { return "label=1", true }
        return "", false
    default:
        return "all", true
    }
}
