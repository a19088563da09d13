package dashboard

import (
    "encoding/csv"
    "net/http"
    "net/http/httptest"
    "os"
    "path/filepath"
    "testing"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/goccy/go-json"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "fairgrid/internal/metrics"
)

func fixture(t *testing.T) *Bundle {
    t.Helper()
    yTrue := []int{1, 1, 0, 0, 1, 1, 0, 0}
    sens := []string{"a", "a", "a", "a", "b", "b", "b", "b"}
    preds := map[string][]int{
        "unmitigated":  {1, 1, 1, 0, 1, 0, 0, 0},
        "candidate_00": {1, 1, 0, 0, 1, 1, 0, 0},
        "candidate_01": {0, 0, 0, 0, 0, 0, 0, 0},
    }
    b, err := Assemble(preds, yTrue, sens, Options{
        SensitiveName: "grp",
        Meta:          map[string]map[string]string{"candidate_00": {"multipliers": "label=1/b=0.5"}},
        Now:           func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
    })
    require.NoError(t, err)
    return b
}

func TestAssemble(t *testing.T) {
    b := fixture(t)
    assert.NotEmpty(t, b.ID)
    assert.Equal(t, SchemaVersion, b.SchemaVersion)
    assert.Equal(t, "grp", b.SensitiveFeature)
    assert.Equal(t, []string{"a", "b"}, b.Groups)
    require.Len(t, b.Models, 3)
    assert.Equal(t, "candidate_00", b.Models[0].ID)
    assert.Equal(t, "unmitigated", b.Models[2].ID)

    perfect, ok := b.Model("candidate_00")
    require.True(t, ok)
    assert.Equal(t, 1.0, perfect.Accuracy)
    assert.Equal(t, 0.0, perfect.EqualizedOddsDifference)
    assert.Equal(t, "label=1/b=0.5", perfect.Meta["multipliers"])

    base, _ := b.Model("unmitigated")
    assert.InDelta(t, 0.75, base.Accuracy, 1e-12)
    assert.InDelta(t, 0.5, base.EqualizedOddsDifference, 1e-12)
    assert.InDelta(t, 0.5, base.DemographicParityDifference, 1e-12)
    assert.Len(t, base.Metrics.ByGroup[metrics.Precision], 2)

    constant, _ := b.Model("candidate_01")
    assert.Equal(t, 0.0, constant.Metrics.ByGroup[metrics.Recall]["a"])
}

func TestAssembleRejectsBadInput(t *testing.T) {
    _, err := Assemble(nil, []int{1}, []string{"a"}, Options{})
    assert.ErrorIs(t, err, ErrNoModels)

    _, err = Assemble(map[string][]int{"m": {1}}, []int{1, 0}, []string{"a", "b"}, Options{})
    assert.ErrorIs(t, err, metrics.ErrLengthMismatch)
}

func TestBundleFileRoundTrip(t *testing.T) {
    b := fixture(t)
    path := filepath.Join(t.TempDir(), "out", "bundle.json")
    require.NoError(t, b.WriteFile(path))
    got, err := ReadFile(path)
    require.NoError(t, err)
    assert.Equal(t, b, got)
}

func TestDecodeBundleRejectsSchema(t *testing.T) {
    path := filepath.Join(t.TempDir(), "bundle.json")
    require.NoError(t, os.WriteFile(path, []byte(`{"schema_version":"0"}`), 0o644))
    _, err := ReadFile(path)
    assert.ErrorContains(t, err, "unsupported bundle schema")
}

func TestFrontier(t *testing.T) {
    pts := []TradeoffPoint{
        {ID: "base", Accuracy: 0.90, Disparity: 0.30},
        {ID: "c0", Accuracy: 0.88, Disparity: 0.10},
        {ID: "c1", Accuracy: 0.85, Disparity: 0.12},
        {ID: "c2", Accuracy: 0.80, Disparity: 0.02},
        {ID: "c3", Accuracy: 0.80, Disparity: 0.02},
    }
    got := Frontier(pts)
    ids := make([]string, len(got))
    for i, p := range got { ids[i] = p.ID }
    assert.Equal(t, []string{"c2", "c3", "c0", "base"}, ids)
}

func TestTradeoffOutputs(t *testing.T) {
    b := fixture(t)
    dir := t.TempDir()

    csvPath := filepath.Join(dir, "tradeoff.csv")
    require.NoError(t, WriteTradeoffCSV(csvPath, b.Points()))
    f, err := os.Open(csvPath)
    require.NoError(t, err)
    defer f.Close()
    rows, err := csv.NewReader(f).ReadAll()
    require.NoError(t, err)
    require.Len(t, rows, 4)
    assert.Equal(t, []string{"candidate_00", "1.000000", "0.000000", "true"}, rows[1])

    pngPath := filepath.Join(dir, "plots", "tradeoff.png")
    require.NoError(t, PlotTradeoff(pngPath, b.Points(), "unmitigated"))
    st, err := os.Stat(pngPath)
    require.NoError(t, err)
    assert.Greater(t, st.Size(), int64(0))
}

func TestRouter(t *testing.T) {
    gin.SetMode(gin.TestMode)
    b := fixture(t)
    r := NewRouter(b, ServerOptions{APIKey: "secret"})

    do := func(path, key string) *httptest.ResponseRecorder {
        req := httptest.NewRequest(http.MethodGet, path, nil)
        if key != "" { req.Header.Set("X-API-Key", key) }
        w := httptest.NewRecorder()
        r.ServeHTTP(w, req)
        return w
    }

    assert.Equal(t, http.StatusUnauthorized, do("/dashboard/models", "").Code)

    w := do("/dashboard/models", "secret")
    require.Equal(t, http.StatusOK, w.Code)
    var listed struct {
        Groups []string       `json:"groups"`
        Models []modelSummary `json:"models"`
    }
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
    assert.Equal(t, []string{"a", "b"}, listed.Groups)
    assert.Len(t, listed.Models, 3)

    w = do("/dashboard/models/unmitigated/metrics", "secret")
    require.Equal(t, http.StatusOK, w.Code)
    var tbl metrics.Table
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tbl))
    base, _ := b.Model("unmitigated")
    assert.Equal(t, *base.Metrics, tbl)

    assert.Equal(t, http.StatusNotFound, do("/dashboard/models/nope/metrics", "secret").Code)

    w = do("/dashboard/frontier", "secret")
    require.Equal(t, http.StatusOK, w.Code)
    var front struct {
        Frontier []TradeoffPoint `json:"frontier"`
    }
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), &front))
    require.Len(t, front.Frontier, 1)
    assert.Equal(t, "candidate_00", front.Frontier[0].ID)
}
