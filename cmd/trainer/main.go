package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"fairgrid/internal/config"
	"fairgrid/internal/dashboard"
	"fairgrid/internal/data"
	"fairgrid/internal/features"
	"fairgrid/internal/metrics"
	"fairgrid/internal/mitigation"
	"fairgrid/internal/models"
	"fairgrid/pkg/utils"
)

const baselineID = "unmitigated"

func main() {
    cfgPath := flag.String("config", "", "YAML or TOML config file")
    regen := flag.Bool("regen", true, "Regenerate the synthetic dataset")
    algo := flag.String("algo", "", "Override model.algo: dt|rf|bagging|gb|logreg")
    constraint := flag.String("constraint", "", "Override search.constraint")
    gridSize := flag.Int("grid_size", 0, "Override search.grid_size")
    flag.Parse()

    cfg, err := config.Load(*cfgPath)
    if err != nil { fmt.Fprintln(os.Stderr, err); os.Exit(2) }
    flag.Visit(func(f *flag.Flag) {
        if f.Name == "regen" { cfg.Data.Regenerate = *regen }
    })
    if *algo != "" { cfg.Model.Algo = *algo }
    if *constraint != "" { cfg.Search.Constraint = *constraint }
    if *gridSize != 0 { cfg.Search.GridSize = *gridSize }
    if err := cfg.Validate(); err != nil { fmt.Fprintln(os.Stderr, err); os.Exit(2) }

    logger := utils.MustLogger(cfg.Log.File, cfg.Log.Level)
    defer logger.Sync()

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
    defer stop()
    if err := run(ctx, cfg, logger); err != nil {
        logger.Fatal("Trainer failed", zap.Error(err))
    }
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
    if cfg.Data.Regenerate {
        logger.Info("Generating synthetic dataset", zap.Int("n", cfg.Data.Rows), zap.String("out", cfg.Data.Path))
        if err := data.GenerateSyntheticApplicants(cfg.Data.Rows, cfg.Data.Seed, cfg.Data.Path); err != nil {
            return fmt.Errorf("generate dataset: %w", err)
        }
    }
    ds, err := features.LoadDataset(cfg.Data.Path)
    if err != nil { return fmt.Errorf("load dataset: %w", err) }
    train, test, err := ds.Split(cfg.Data.TestRatio, cfg.Data.Seed)
    if err != nil { return err }
    logger.Info("Dataset loaded",
        zap.Int("train", train.Len()),
        zap.Int("test", test.Len()),
        zap.Strings("groups", ds.Groups()),
    )

    base, err := models.New(cfg.Model)
    if err != nil { return err }
    factory := learnerFactory(cfg.Model)
    if err := base.Fit(train.X, train.Y, nil); err != nil { return fmt.Errorf("fit %s: %w", base.Name(), err) }
    basePred := base.Predict(test.X)
    tbl, err := metrics.Compute(test.Y, basePred, test.Sensitive, metrics.Standard())
    if err != nil { return err }
    logTable(logger, base.Name(), tbl)
    fmt.Println("Model:", base.Name())
    _ = tbl.WriteText(os.Stdout)

    c, err := mitigation.ParseConstraint(cfg.Search.Constraint)
    if err != nil { return err }
    search := mitigation.NewSearch(
        mitigation.WithGridLimit(cfg.Search.GridLimit),
        mitigation.WithConstraintWeight(cfg.Search.ConstraintWeight),
        mitigation.WithWorkers(cfg.Search.Workers),
        mitigation.WithLogger(logger.Named("search")),
    )
    res, err := search.Run(ctx, factory, c, cfg.Search.GridSize, train.X, train.Y, train.Sensitive)
    if err != nil { return fmt.Errorf("grid search: %w", err) }
    if err := res.Err(); err != nil {
        logger.Warn("Some grid points were skipped", zap.Int("failures", len(res.Failures)), zap.Error(err))
    }

    preds := res.Predict(test.X)
    preds[baselineID] = basePred
    meta := map[string]map[string]string{baselineID: {"model": base.Name()}}
    for _, cand := range res.Candidates {
        meta[cand.ID()] = map[string]string{"model": base.Name(), "multipliers": cand.Key()}
    }
    bundle, err := dashboard.Assemble(preds, test.Y, test.Sensitive, dashboard.Options{
        SensitiveName: test.SensitiveName,
        Metrics:       metrics.Standard(),
        Meta:          meta,
    })
    if err != nil { return fmt.Errorf("assemble dashboard: %w", err) }
    if err := bundle.WriteFile(cfg.Output.Bundle); err != nil { return err }
    logger.Info("Dashboard bundle saved", zap.String("path", cfg.Output.Bundle), zap.String("id", bundle.ID), zap.Int("models", len(bundle.Models)))

    points := bundle.Points()
    if cfg.Output.CSV != "" {
        if err := dashboard.WriteTradeoffCSV(cfg.Output.CSV, points); err != nil {
            logger.Warn("Failed to write trade-off CSV", zap.Error(err))
        }
    }
    if cfg.Output.Plot != "" {
        if err := dashboard.PlotTradeoff(cfg.Output.Plot, points, baselineID); err != nil {
            logger.Warn("Failed to write trade-off plot", zap.Error(err))
        } else {
            logger.Info("Trade-off plot saved", zap.String("png", cfg.Output.Plot))
        }
    }
    for _, p := range dashboard.Frontier(points) {
        fmt.Printf("pareto %-14s accuracy=%.4f eo_diff=%.4f\n", p.ID, p.Accuracy, p.Disparity)
    }
    return nil
}

func logTable(logger *zap.Logger, model string, tbl *metrics.Table) {
    fields := []zap.Field{zap.String("model", model)}
    for _, m := range tbl.Metrics {
        fields = append(fields, zap.Float64(m, tbl.Overall[m]), zap.Float64(m+"_difference", tbl.Difference(m)))
    }
    logger.Info("Holdout metrics", fields...)
}

// learnerFactory yields a nil learner when p cannot build a model, which the
// search records as a failed grid point.
func learnerFactory(p models.Params) mitigation.LearnerFactory {
    return func() mitigation.Learner {
        m, err := models.New(p)
        if err != nil { return nil }
        return m
    }
}
