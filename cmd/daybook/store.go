package main

import (
	"strings"

	"daybook/internal/config"
	"daybook/internal/paths"
	"daybook/internal/state"
	"daybook/task"
)

// openStore loads config, wires the persistence adapter and notifier,
// and opens the domain store. Repeating tasks that came due are rolled
// forward as part of Open.
func openStore() (*task.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	dir := cfg.StateDir
	if dir == "" {
		dir, err = paths.StateDir()
		if err != nil {
			return nil, nil, err
		}
	}

	store, err := task.Open(task.OpenOptions{
		Persister: state.NewStore(dir),
		Notifier:  task.NotifierFunc(printNotifier),
	})
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

// resolveListFlag resolves a --list value to a list id. An empty value
// falls back to the configured default list, then to the virtual "all"
// list.
func resolveListFlag(store *task.Store, cfg *config.Config, ref string) (string, error) {
	if ref == "" {
		ref = cfg.DefaultList
	}
	if ref == "" {
		return "", nil
	}
	return store.ResolveListID(ref)
}

// resolveCategoryRefs resolves category ids, prefixes, or names.
func resolveCategoryRefs(store *task.Store, refs []string) ([]string, error) {
	if len(refs) == 1 && refs[0] == "none" {
		return []string{}, nil
	}
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		id, err := store.ResolveCategoryID(ref)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
