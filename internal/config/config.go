package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "log/slog"
    "net"
    "os"
    "path/filepath"
    "strconv"
    "strings"
    "time"

    toml "github.com/pelletier/go-toml/v2"
    "gopkg.in/yaml.v3"
)

// DefaultPath is used when neither --config nor QUICKDIFF_CONFIG is set.
const DefaultPath = "~/.config/quickdiff/config.toml"

// Layouts accepted by View.Layout.
const (
    LayoutSide   = "side"
    LayoutInline = "inline"
)

// Config holds user settings. The same tags serve TOML, YAML and JSON files.
type Config struct {
    Server Server `json:"server" toml:"server" yaml:"server"`
    View   View   `json:"view" toml:"view" yaml:"view"`
    Detect Detect `json:"detect" toml:"detect" yaml:"detect"`
    Log    Log    `json:"log" toml:"log" yaml:"log"`
}

type Server struct {
    Addr    string `json:"addr" toml:"addr" yaml:"addr"`             // "auto" picks a free localhost port
    BaseURL string `json:"base_url" toml:"base_url" yaml:"base_url"` // origin+path for share links; empty uses the request
}

type View struct {
    Layout               string `json:"layout" toml:"layout" yaml:"layout"`
    Wrap                 bool   `json:"wrap" toml:"wrap" yaml:"wrap"`
    IgnoreTrimWhitespace bool   `json:"ignore_trim_whitespace" toml:"ignore_trim_whitespace" yaml:"ignore_trim_whitespace"`
}

type Detect struct {
    DebounceMS int `json:"debounce_ms" toml:"debounce_ms" yaml:"debounce_ms"`
}

type Log struct {
    Level string `json:"level" toml:"level" yaml:"level"`
    File  string `json:"file,omitempty" toml:"file,omitempty" yaml:"file,omitempty"` // TUI only
}

// Default returns the built-in settings.
func Default() *Config {
    return &Config{
        Server: Server{Addr: ":8080"},
        View:   View{Layout: LayoutSide},
        Detect: Detect{DebounceMS: 1000},
        Log:    Log{Level: "info"},
    }
}

// Resolve returns path, or QUICKDIFF_CONFIG, or DefaultPath, with "~" expanded.
func Resolve(path string) (string, error) {
    if strings.TrimSpace(path) == "" {
        path = os.Getenv("QUICKDIFF_CONFIG")
    }
    if strings.TrimSpace(path) == "" {
        path = DefaultPath
    }
    return ExpandPath(path)
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
    c := Default()
    data, err := os.ReadFile(path)
    if err != nil {
        if errors.Is(err, os.ErrNotExist) {
            return c, nil
        }
        return nil, fmt.Errorf("read config: %w", err)
    }
    switch format(path) {
    case "toml":
        err = toml.Unmarshal(data, c)
    case "yaml":
        err = yaml.Unmarshal(data, c)
    default:
        err = json.Unmarshal(data, c)
    }
    if err != nil {
        return nil, fmt.Errorf("parse config %s: %w", filepath.Base(path), err)
    }
    if err := c.Validate(); err != nil {
        return nil, err
    }
    return c, nil
}

// Save writes c to path in the format its extension names, creating parent dirs.
func Save(path string, c *Config) error {
    var (
        data []byte
        err  error
    )
    switch format(path) {
    case "toml":
        data, err = toml.Marshal(c)
    case "yaml":
        data, err = yaml.Marshal(c)
    default:
        data, err = json.MarshalIndent(c, "", "  ")
    }
    if err != nil {
        return fmt.Errorf("marshal config: %w", err)
    }
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        return fmt.Errorf("create config dir: %w", err)
    }
    return os.WriteFile(path, data, 0o644)
}

func format(path string) string {
    switch strings.ToLower(filepath.Ext(path)) {
    case ".toml":
        return "toml"
    case ".yaml", ".yml":
        return "yaml"
    default:
        return "json"
    }
}

// ApplyEnv overrides file settings from the environment. QUICKDIFF_ADDR wins over PORT.
func (c *Config) ApplyEnv(getenv func(string) string) {
    if getenv == nil {
        getenv = os.Getenv
    }
    if v := strings.TrimSpace(getenv("PORT")); v != "" {
        c.Server.Addr = ":" + v
    }
    if v := strings.TrimSpace(getenv("QUICKDIFF_ADDR")); v != "" {
        c.Server.Addr = v
    }
    if v := strings.TrimSpace(getenv("QUICKDIFF_BASE_URL")); v != "" {
        c.Server.BaseURL = v
    }
    if v := strings.TrimSpace(getenv("LOG_LEVEL")); v != "" {
        c.Log.Level = v
    }
}

func (c *Config) Validate() error {
    switch c.View.Layout {
    case LayoutSide, LayoutInline:
    case "":
        c.View.Layout = LayoutSide
    default:
        return fmt.Errorf("view.layout: want %q or %q, got %q", LayoutSide, LayoutInline, c.View.Layout)
    }
    if c.Detect.DebounceMS < 0 {
        return fmt.Errorf("detect.debounce_ms: must not be negative, got %d", c.Detect.DebounceMS)
    }
    if c.Detect.DebounceMS == 0 {
        c.Detect.DebounceMS = Default().Detect.DebounceMS
    }
    if _, err := parseLevel(c.Log.Level); err != nil {
        return err
    }
    if c.Server.Addr != "auto" {
        _, port, err := net.SplitHostPort(c.Server.Addr)
        if err != nil {
            return fmt.Errorf("server.addr: want host:port or \"auto\": %w", err)
        }
        if _, err := strconv.Atoi(port); err != nil {
            return fmt.Errorf("server.addr: bad port %q", port)
        }
    }
    return nil
}

// SlogLevel is Log.Level as a slog level; unknown names fall back to info.
func (c *Config) SlogLevel() slog.Level {
    lvl, err := parseLevel(c.Log.Level)
    if err != nil {
        return slog.LevelInfo
    }
    return lvl
}

func parseLevel(s string) (slog.Level, error) {
    if strings.TrimSpace(s) == "" {
        return slog.LevelInfo, nil
    }
    var lvl slog.Level
    if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
        return 0, fmt.Errorf("log.level: %w", err)
    }
    return lvl, nil
}

func (c *Config) DebounceDelay() time.Duration {
    return time.Duration(c.Detect.DebounceMS) * time.Millisecond
}

// SideBySide reports whether the configured layout is side by side.
func (c *Config) SideBySide() bool { return c.View.Layout != LayoutInline }

// ExpandPath resolves a leading "~" to the home directory and makes path absolute.
func ExpandPath(path string) (string, error) {
    trimmed := strings.TrimSpace(path)
    if trimmed == "" {
        return "", fmt.Errorf("path is empty")
    }
    if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
        home, err := os.UserHomeDir()
        if err != nil {
            return "", fmt.Errorf("resolve home dir: %w", err)
        }
        trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
    }
    return filepath.Abs(trimmed)
}
