package dashboard

import (
    "errors"
    "fmt"
    "io"
    "os"
    "path/filepath"
    "sort"
    "time"

    "github.com/goccy/go-json"
    "github.com/google/uuid"

    "fairgrid/internal/metrics"
)

const SchemaVersion = "1"

// ModelEntry is one model's predictions over the shared test rows together
// with its grouped metrics.
type ModelEntry struct {
    ID                          string            `json:"id"`
    Predictions                 []int             `json:"predictions"`
    Accuracy                    float64           `json:"accuracy"`
    EqualizedOddsDifference     float64           `json:"equalized_odds_difference"`
    DemographicParityDifference float64           `json:"demographic_parity_difference"`
    Metrics                     *metrics.Table    `json:"metrics"`
    Meta                        map[string]string `json:"meta,omitempty"`
}

// Bundle is the serialisable hand-off to a dashboard or upload service.
type Bundle struct {
    ID               string       `json:"id"`
    SchemaVersion    string       `json:"schema_version"`
    CreatedAt        time.Time    `json:"created_at"`
    SensitiveFeature string       `json:"sensitive_feature"`
    Groups           []string     `json:"groups"`
    YTrue            []int        `json:"y_true"`
    Sensitive        []string     `json:"sensitive"`
    Models           []ModelEntry `json:"models"`
}

type Options struct {
    SensitiveName string
    // Metrics defaults to metrics.Standard.
    Metrics map[string]metrics.Func
    // Meta is attached to the model entry with the same ID.
    Meta map[string]map[string]string
    Now  func() time.Time
}

var ErrNoModels = errors.New("no predictions to assemble")

func Assemble(predictions map[string][]int, yTrue []int, sensitive []string, opts Options) (*Bundle, error) {
    if len(predictions) == 0 { return nil, ErrNoModels }
    if len(yTrue) != len(sensitive) {
        return nil, fmt.Errorf("%w: y_true=%d sensitive=%d", metrics.ErrLengthMismatch, len(yTrue), len(sensitive))
    }
    fns := opts.Metrics
    if fns == nil { fns = metrics.Standard() }
    now := time.Now
    if opts.Now != nil { now = opts.Now }

    ids := make([]string, 0, len(predictions))
    for id := range predictions { ids = append(ids, id) }
    sort.Strings(ids)

    b := &Bundle{
        ID:               uuid.New().String(),
        SchemaVersion:    SchemaVersion,
        CreatedAt:        now().UTC(),
        SensitiveFeature: opts.SensitiveName,
        YTrue:            yTrue,
        Sensitive:        sensitive,
        Models:           make([]ModelEntry, 0, len(ids)),
    }
    for _, id := range ids {
        entry, err := buildEntry(id, predictions[id], yTrue, sensitive, fns)
        if err != nil { return nil, fmt.Errorf("model %s: %w", id, err) }
        entry.Meta = opts.Meta[id]
        b.Models = append(b.Models, entry)
    }
    b.Groups = b.Models[0].Metrics.Groups
    return b, nil
}

func buildEntry(id string, pred, yTrue []int, sensitive []string, fns map[string]metrics.Func) (ModelEntry, error) {
    tbl, err := metrics.Compute(yTrue, pred, sensitive, fns)
    if err != nil { return ModelEntry{}, err }
    acc, _ := metrics.AccuracyScore(yTrue, pred)
    eo, err := metrics.EqualizedOddsDifference(yTrue, pred, sensitive)
    if err != nil { return ModelEntry{}, err }
    dp, err := metrics.DemographicParityDifference(yTrue, pred, sensitive)
    if err != nil { return ModelEntry{}, err }
    return ModelEntry{
        ID:                          id,
        Predictions:                 pred,
        Accuracy:                    acc,
        EqualizedOddsDifference:     eo,
        DemographicParityDifference: dp,
        Metrics:                     tbl,
    }, nil
}

func (b *Bundle) Model(id string) (*ModelEntry, bool) {
    for i := range b.Models {
        if b.Models[i].ID == id { return &b.Models[i], true }
    }
    return nil, false
}

func (b *Bundle) Encode(w io.Writer) error {
    enc := json.NewEncoder(w)
    enc.SetIndent("", "  ")
    return enc.Encode(b)
}

func DecodeBundle(r io.Reader) (*Bundle, error) {
    var b Bundle
    if err := json.NewDecoder(r).Decode(&b); err != nil { return nil, err }
    if b.SchemaVersion != SchemaVersion {
        return nil, fmt.Errorf("unsupported bundle schema %q", b.SchemaVersion)
    }
    return &b, nil
}

func (b *Bundle) WriteFile(path string) error {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    f, err := os.Create(path)
    if err != nil { return err }
    if err := b.Encode(f); err != nil { f.Close(); return err }
    return f.Close()
}

func ReadFile(path string) (*Bundle, error) {
    f, err := os.Open(path)
    if err != nil { return nil, err }
    defer f.Close()
    return DecodeBundle(f)
}
