package data

import (
	"encoding/csv"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

var AgeBuckets = []string{"18-25", "26-40", "41-60", "60+"}
var Employments = []string{"salaried", "self-employed", "contract", "unemployed"}
var Purposes = []string{"car", "home", "education", "business", "other"}

var Header = []string{"applicant_id", "age_bucket", "income", "debt", "years_employed", "credit_lines", "late_payments", "employment", "purpose", "approved"}

// historical approvals penalised the youngest and oldest buckets
var agePenalty = map[string]float64{"18-25": 0.9, "26-40": 0.0, "41-60": 0.1, "60+": 0.6}

func GenerateSyntheticApplicants(n int, seed int64, outPath string) error {
    if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
        return err
    }
    f, err := os.Create(outPath)
    if err != nil {
        return err
    }
    defer f.Close()

    w := csv.NewWriter(f)
    defer w.Flush()
    if err := w.Write(Header); err != nil {
        return err
    }

    rng := rand.New(rand.NewSource(seed))
    for i := 0; i < n; i++ {
        a := syntheticApplicant(rng, i)
        rec := []string{
            a.ApplicantID,
            a.AgeBucket,
            strconv.FormatFloat(a.Income, 'f', 2, 64),
            strconv.FormatFloat(a.Debt, 'f', 2, 64),
            strconv.FormatFloat(a.YearsEmployed, 'f', 1, 64),
            strconv.Itoa(a.CreditLines),
            strconv.Itoa(a.LatePayments),
            a.Employment,
            a.Purpose,
            strconv.Itoa(a.Approved),
        }
        if err := w.Write(rec); err != nil {
            return err
        }
    }
    w.Flush()
    return w.Error()
}

func syntheticApplicant(rng *rand.Rand, i int) Applicant {
    age := AgeBuckets[rng.Intn(len(AgeBuckets))]
    emp := Employments[rng.Intn(len(Employments))]
    if rng.Float64() < 0.7 { emp = "salaried" }

    income := math.Max(800, rng.NormFloat64()*1500+4000)
    switch age {
    case "18-25":
        income *= 0.6
    case "41-60":
        income *= 1.2
    }
    if emp == "unemployed" { income *= 0.3 }
    debt := rng.Float64() * income * 0.8
    years := math.Max(0, rng.NormFloat64()*4+6)
    if age == "18-25" { years = math.Min(years, 4) }
    lines := rng.Intn(8)
    late := 0
    if rng.Float64() < 0.25 { late = 1 + rng.Intn(4) }

    score := 1.2*(income/4000-1) - 2.0*(debt/income) + 0.08*years - 0.5*float64(late) + 0.05*float64(lines)
    score -= agePenalty[age]
    approved := 0
    if score+rng.NormFloat64()*0.5 > -0.6 { approved = 1 }

    return Applicant{
        ApplicantID:   "A" + strconv.Itoa(100000+i),
        AgeBucket:     age,
        Income:        income,
        Debt:          debt,
        YearsEmployed: years,
        CreditLines:   lines,
        LatePayments:  late,
        Employment:    emp,
        Purpose:       Purposes[rng.Intn(len(Purposes))],
        Approved:      approved,
    }
}
