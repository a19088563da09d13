package features

import (
    "strings"

    "fairgrid/internal/data"
)

// Vectorize builds the model input for one applicant. AgeBucket is the
// sensitive attribute and stays out of the vector.
func Vectorize(a data.Applicant) ([]float64, []string) {
    names := []string{}
    vec := []float64{}

    names = append(names, "Income", "Debt", "DebtToIncome", "YearsEmployed", "CreditLines", "LatePayments")
    dti := 0.0
    if a.Income > 0 { dti = a.Debt / a.Income }
    vec = append(vec, a.Income/1000, a.Debt/1000, dti, a.YearsEmployed, float64(a.CreditLines), float64(a.LatePayments))

    names = append(names, "HasLatePayments")
    vec = append(vec, boolToFloat(a.LatePayments > 0))

    empLower := strings.ToLower(a.Employment)
    for _, e := range data.Employments {
        names = append(names, "Emp_"+e)
        vec = append(vec, boolToFloat(e == empLower))
    }
    purposeLower := strings.ToLower(a.Purpose)
    for _, p := range data.Purposes {
        names = append(names, "Purpose_"+p)
        vec = append(vec, boolToFloat(p == purposeLower))
    }
    return vec, names
}

func boolToFloat(b bool) float64 { if b { return 1.0 } ; return 0.0 }

func FeatureNames() []string {
    _, names := Vectorize(data.Applicant{})
    return names
}
