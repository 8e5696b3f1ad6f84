package migrate

import (
	"context"
	"io/fs"
	"log/slog"

	"badge-promotion-engine/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Runner applies the embedded migration directory with the atlas CLI found
// on PATH.
type Runner struct {
	dir    fs.FS
	atlas  string
	logger  *slog.Logger
}

func NewRunner(dir fs.FS, logger *slog.Logger) *Runner {
	return &Runner{dir: dir, atlas: "atlas", logger: logger}
}

func (r *Runner) client() (*atlasexec.Client, func(), error) {
	wd, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(r.dir))
	if err != nil {
		return nil, nil, errs.Wrap(err, "prepare migration directory")
	}
	client, err := atlasexec.NewClient(wd.Path(), r.atlas)
	if err != nil {
		wd.Close()
		return nil, nil, errs.Wrap(err, "create atlas client")
	}
	return client, func() { wd.Close() }, nil
}

// Apply runs every pending migration against url.
func (r *Runner) Apply(ctx context.Context, url string) error {
	client, cleanup, err := r.client()
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: url})
	if err != nil {
		return errs.Wrap(err, "apply migrations")
	}
	r.logger.Info("migrations applied",
		slog.Int("count", len(res.Applied)),
		slog.String("current", res.Current),
		slog.String("target", res.Target),
	)
	return nil
}

// Status logs the applied version and whatever is still pending.
func (r *Runner) Status(ctx context.Context, url string) error {
	client, cleanup, err := r.client()
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: url})
	if err != nil {
		return errs.Wrap(err, "read migration status")
	}
	r.logger.Info("migration status",
		slog.String("status", res.Status),
		slog.String("current", res.Current),
		slog.String("next", res.Next),
		slog.Int("pending", len(res.Pending)),
	)
	return nil
}
