package root

import (
	"context"
	"database/sql"
	"os"
	"strconv"

	"taskpet/internal/game"
	"taskpet/internal/storage"
	"taskpet/internal/ui"
)

func openDB(ctx context.Context) (*sql.DB, error) {
	path := dbPath
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	return storage.Open(ctx, path)
}

func newStore(db *sql.DB) *storage.Store {
	return storage.NewStore(db)
}

// openGame loads a game wired to console sinks for one-shot commands.
// The caller must close the returned DB.
func openGame(ctx context.Context) (*game.Game, *sql.DB, error) {
	db, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	g := game.New(newStore(db), ui.ConsoleSinks{Out: os.Stdout})
	if err := g.Load(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return g, db, nil
}

// resolveTaskID accepts either the 1-based position shown by `list` or a
// task's full id. Unknown references resolve to "".
func resolveTaskID(g *game.Game, arg string) string {
	tasks := g.Tasks()
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(tasks) {
		return tasks[n-1].ID
	}
	for _, t := range tasks {
		if t.ID == arg {
			return t.ID
		}
	}
	return ""
}
