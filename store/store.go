package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"taskmaster/model"
)

const (
	appDirName     = "Tasks"
	dataFileName   = "lists.json"
	legacyFileName = "todo.json"
	configFileName = "config.toml"

	// UnnamedTitle replaces a blank title when a legacy list is migrated.
	UnnamedTitle = "Unnamed"
)

var (
	// ErrNoHome is returned when neither HOME nor USERPROFILE is set.
	ErrNoHome = errors.New("could not resolve home directory")
	// ErrMissingField is returned when a required key is absent from a file.
	ErrMissingField = errors.New("missing field")
)

// Paths locates every file the application reads or writes.
type Paths struct {
	Root   string
	Data   string
	Legacy string
	Log    string
	Config string
}

// ResolveRoot returns the application directory under the user's home,
// checking HOME first and USERPROFILE second.
func ResolveRoot() (string, error) {
	for _, key := range []string{"HOME", "USERPROFILE"} {
		if home := os.Getenv(key); home != "" {
			return filepath.Join(home, appDirName), nil
		}
	}
	return "", ErrNoHome
}

// PathsFor derives the file layout from an application directory.
func PathsFor(root string) Paths {
	return Paths{
		Root:   root,
		Data:   filepath.Join(root, dataFileName),
		Legacy: filepath.Join(root, legacyFileName),
		Log:    filepath.Join(root, "bin", "logs.txt"),
		Config: filepath.Join(root, configFileName),
	}
}

// legacyState is the single-list schema written by older versions.
type legacyState struct {
	Title         string       `json:"title"`
	List          []model.Task `json:"list"`
	SelectedTheme string       `json:"selected_theme,omitempty"`
}

// Load reads the current schema from path.
func Load(path string) (model.List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.List{}, err
	}
	return decodeState(data)
}

// LoadLegacy reads a legacy single-list file and wraps it as a one-entry
// state. A blank legacy title becomes UnnamedTitle.
func LoadLegacy(path string) (model.List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.List{}, err
	}
	var legacy legacyState
	if err := json.Unmarshal(data, &legacy); err != nil {
		return model.List{}, err
	}
	if legacy.List == nil {
		return model.List{}, fmt.Errorf("%w: list", ErrMissingField)
	}

	title := legacy.Title
	if strings.TrimSpace(title) == "" {
		title = UnnamedTitle
	}
	state := model.NewList()
	state.Lists = []model.Tasks{{Title: title, List: legacy.List}}
	if th, ok := model.ParseTheme(legacy.SelectedTheme); ok {
		state.SelectedTheme = &th
	}
	return state, nil
}

// Save writes the persisted part of state to path as JSON.
// The write goes through a temporary file and an atomic rename; the
// previous file is kept as path + ".bak".
func Save(path string, state model.List) error {
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := backup(path); err != nil {
		return fmt.Errorf("back up %s: %w", path, err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

func decodeState(data []byte) (model.List, error) {
	var state model.List
	if err := json.Unmarshal(data, &state); err != nil {
		return model.List{}, err
	}
	if state.Lists == nil {
		return model.List{}, fmt.Errorf("%w: lists", ErrMissingField)
	}
	for i := range state.Lists {
		if state.Lists[i].List == nil {
			state.Lists[i].List = []model.Task{}
		}
	}
	// The catalog is fixed by the program, whatever the file says.
	state.Themes = model.Catalog()
	return state, nil
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func backup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.WriteFile(path+".bak", data, 0o644)
}

// quarantine moves an unreadable data file aside so the next save does not
// overwrite it. It returns the new location.
func quarantine(path string) (string, error) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	timestamp := time.Now().UTC().Format("20060102-150405")
	corruptPath := filepath.Join(filepath.Dir(path), fmt.Sprintf("%s.corrupt-%s%s", name, timestamp, ext))
	if err := os.Rename(path, corruptPath); err != nil {
		return "", err
	}
	return corruptPath, nil
}
