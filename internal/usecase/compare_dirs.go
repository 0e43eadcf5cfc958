package usecase

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/kobayashik-Faber/shotcheck/internal/domain"
	"github.com/kobayashik-Faber/shotcheck/internal/ports"
	"github.com/kobayashik-Faber/shotcheck/internal/usecase/pixeldiff"
)

// CompareDirs runs the whole pipeline: match pairs, compare each pair pixel
// by pixel, render composites for differing pairs, write the report.
type CompareDirs struct {
	matcher   ports.PairMatcher
	images    ports.ImageStore
	renderer  ports.DiffRenderer
	report    ports.ReportSink
	threshold uint8
}

func NewCompareDirs(pm ports.PairMatcher, is ports.ImageStore, dr ports.DiffRenderer, rs ports.ReportSink, threshold uint8) *CompareDirs {
	return &CompareDirs{
		matcher:   pm,
		images:    is,
		renderer:  dr,
		report:    rs,
		threshold: threshold,
	}
}

// Execute processes every matched pair sequentially. A pair that fails to
// load or render is recorded as failed and the run continues; matching
// errors and the final report write are fatal.
func (uc *CompareDirs) Execute(ctx context.Context, dirA, dirB, outDir string) (domain.RunResult, error) {
	run := domain.RunResult{
		DirA:      dirA,
		DirB:      dirB,
		OutputDir: outDir,
		StartedAt: time.Now(),
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		run.EndedAt = time.Now()
		return run, &domain.OpError{
			Op:   "compare.mkdir",
			Kind: domain.KindExecution,
			Path: outDir,
			Err:  err,
		}
	}

	set, err := uc.matcher.Match(dirA, dirB)
	if err != nil {
		run.EndedAt = time.Now()
		return run, err
	}
	run.UnmatchedA = set.UnmatchedA
	run.UnmatchedB = set.UnmatchedB

	if len(set.Pairs) == 0 {
		run.EndedAt = time.Now()
		return run, &domain.OpError{
			Op:   "compare.match",
			Kind: domain.KindUsage,
			Err:  domain.ErrNoPairs,
		}
	}

	run.Results = make([]domain.PairResult, 0, len(set.Pairs))
	for _, pair := range set.Pairs {
		if err := ctx.Err(); err != nil {
			run.EndedAt = time.Now()
			return run, err
		}
		run.Results = append(run.Results, uc.comparePair(pair, outDir))
	}
	run.EndedAt = time.Now()

	path, err := uc.report.Write(run)
	if err != nil {
		return run, err
	}
	run.ReportPath = path

	return run, nil
}

func (uc *CompareDirs) comparePair(pair domain.Pair, outDir string) domain.PairResult {
	res := domain.PairResult{
		Key:   pair.Key,
		PathA: pair.PathA,
		PathB: pair.PathB,
	}

	imgA, err := uc.images.Load(pair.PathA)
	if err != nil {
		res.Status = domain.StatusFailed
		res.Error = err.Error()
		return res
	}
	imgB, err := uc.images.Load(pair.PathB)
	if err != nil {
		res.Status = domain.StatusFailed
		res.Error = err.Error()
		return res
	}

	cmp := pixeldiff.Compare(imgA, imgB, uc.threshold)
	if cmp.SizeMismatch {
		res.Status = domain.StatusDifferent
		res.SizeMismatch = true
		return res
	}

	res.DiffPixels = cmp.DiffPixels
	res.MaxDelta = cmp.MaxDelta

	if cmp.Identical {
		res.Status = domain.StatusIdentical
		return res
	}
	res.Status = domain.StatusDifferent

	composite := uc.renderer.Render(imgA, imgB, cmp.Mask)
	diffPath := filepath.Join(outDir, pair.Key+"_diff.png")
	if err := uc.images.Save(diffPath, composite); err != nil {
		res.Status = domain.StatusFailed
		res.Error = err.Error()
		return res
	}
	res.DiffPath = diffPath

	return res
}
