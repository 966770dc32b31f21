// Copyright
// SPDX-License-Identifier: MIT
// quickdiff: dual-pane text diff with shareable links, in the terminal and the browser
package main

import (
    "context"
    "errors"
    "flag"
    "fmt"
    "io"
    "log/slog"
    "os"
    "os/signal"
    "path/filepath"
    "syscall"
    "time"

    "quickdiff/internal/config"
    "quickdiff/internal/httpx"
    "quickdiff/internal/lang"
    "quickdiff/internal/patch"
    "quickdiff/internal/ports"
    "quickdiff/internal/server"
    "quickdiff/internal/share"
    "quickdiff/internal/tui"
    "quickdiff/web"
)

const Version = "1.0.0"

/* ---------- CLI ---------- */

func main() {
    if len(os.Args) < 2 {
        usage()
        return
    }
    var err error
    switch os.Args[1] {
    case "help", "-h", "--help":
        if len(os.Args) > 2 {
            helpTopic(os.Args[2])
        } else {
            usage()
        }
    case "version", "-v", "--version":
        fmt.Println("quickdiff", Version)
    case "serve":
        err = cmdServe(os.Args[2:])
    case "tui":
        err = cmdTUI(os.Args[2:])
    case "share":
        err = cmdShare(os.Args[2:])
    case "export":
        err = cmdExport(os.Args[2:])
    case "open":
        err = cmdOpen(os.Args[2:])
    case "patch":
        err = cmdPatch(os.Args[2:])
    case "health":
        err = cmdHealth(os.Args[2:])
    default:
        usage()
    }
    if err != nil {
        fmt.Fprintln(os.Stderr, "quickdiff:", err)
        os.Exit(1)
    }
}

func usage() {
    fmt.Print(`quickdiff ` + Version + `
Compare two texts side by side, then share the comparison as a self-contained link.
USAGE
  quickdiff <command> [options]
COMMANDS
  tui          Open the terminal diff (optionally from files, a share link or a .qdiff file)
  serve        Serve the browser diff and the share/import API
  share        Print a share link for two files
  export       Write two files as a .qdiff session
  open         Decode a share link or token
  patch        Print a line-by-line patch of two files
  health       Check a running server
  help         Show help (try: quickdiff help tui)
  version      Print version
NOTES
  • Share links carry the whole comparison in the URL fragment; nothing is stored on a server.
  • Settings come from ~/.config/quickdiff/config.toml (or --config / QUICKDIFF_CONFIG).
`)
}

func helpTopic(name string) {
    switch name {
    case "tui":
        fmt.Print(`USAGE
  quickdiff tui [--share LINK|TOKEN] [--import FILE] [--config PATH] [--log-file PATH]
                [--out DIR] [--no-color] [LEFT [RIGHT]]
DESCRIPTION
  Opens the dual-pane editor with a live diff below it. Shared links and imported
  files open read-only; press ctrl+r and confirm to edit them.
OPTIONS
  --share LINK      A share URL, a "#share=" fragment or a bare token
  --import FILE     A .qdiff file exported earlier
  --out DIR         Where exports and patches are written (default: working directory)
  --log-file PATH   Append logs to file (created if missing)
  --no-color        Plain output (also honored: NO_COLOR)
`)
    case "serve":
        fmt.Print(`USAGE
  quickdiff serve [--config PATH] [--addr HOST:PORT|auto] [--base-url URL]
DESCRIPTION
  Serves the browser front end at "/" and the JSON API under /api.
  QUICKDIFF_ADDR, PORT, QUICKDIFF_BASE_URL and LOG_LEVEL override the config file.
`)
    case "open":
        fmt.Print(`USAGE
  quickdiff open [--left FILE] [--right FILE] LINK|TOKEN
DESCRIPTION
  Prints the decoded envelope as .qdiff JSON, or writes each side to a file.
`)
    default:
        usage()
    }
}

/* ---------- commands ---------- */

func loadConfig(path string) (*config.Config, error) {
    p, err := config.Resolve(path)
    if err != nil {
        return nil, err
    }
    c, err := config.Load(p)
    if err != nil {
        return nil, err
    }
    c.ApplyEnv(os.Getenv)
    if err := c.Validate(); err != nil {
        return nil, err
    }
    return c, nil
}

func cmdServe(args []string) error {
    fs := flag.NewFlagSet("serve", flag.ExitOnError)
    fs.Usage = func() { helpTopic("serve") }
    cfgPath := fs.String("config", "", "Config file (TOML, YAML or JSON)")
    addr := fs.String("addr", "", `Listen address, or "auto" for a free loopback port`)
    baseURL := fs.String("base-url", "", "Origin and path share links point at")
    _ = fs.Parse(args)

    c, err := loadConfig(*cfgPath)
    if err != nil {
        return err
    }
    if *addr != "" {
        c.Server.Addr = *addr
    }
    if *baseURL != "" {
        c.Server.BaseURL = *baseURL
    }
    listen, err := ports.ResolveAddr(c.Server.Addr)
    if err != nil {
        return err
    }

    log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: c.SlogLevel()}))
    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    h := server.New(server.Options{
        BaseURL: c.Server.BaseURL,
        Logger:  log,
        Static:  web.Static(),
    })
    log.Info("quickdiff serving", "url", ports.LocalURL(listen), "version", Version)
    return server.Serve(ctx, listen, h, log)
}

func cmdTUI(args []string) error {
    fs := flag.NewFlagSet("tui", flag.ExitOnError)
    fs.Usage = func() { helpTopic("tui") }
    cfgPath := fs.String("config", "", "Config file (TOML, YAML or JSON)")
    shareArg := fs.String("share", "", "Share link, fragment or token to open read-only")
    importArg := fs.String("import", "", "A .qdiff file to open read-only")
    outDir := fs.String("out", "", "Directory for exported sessions and patches")
    logPath := fs.String("log-file", "", "Append logs to file (created if missing)")
    noColor := fs.Bool("no-color", false, "Disable colors")
    _ = fs.Parse(args)

    c, err := loadConfig(*cfgPath)
    if err != nil {
        return err
    }
    if *logPath == "" {
        *logPath = c.Log.File
    }
    lf, err := openLogFile(*logPath)
    if err != nil {
        fmt.Fprintln(os.Stderr, "Could not open log file:", err)
    }
    defer func() {
        if lf != nil {
            _ = lf.Close()
        }
    }()
    var w io.Writer = io.Discard
    if lf != nil {
        w = lf
    }
    log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.SlogLevel()}))

    opts := tui.Options{
        Config:    c,
        Logger:    log,
        Clipboard: tui.SystemClipboard{},
        Share:     *shareArg,
        Import:    *importArg,
        Dir:       *outDir,
        NoColor:   *noColor,
    }
    if fs.NArg() > 0 {
        opts.Left = fs.Arg(0)
    }
    if fs.NArg() > 1 {
        opts.Right = fs.Arg(1)
    }

    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
    defer stop()
    return tui.Run(ctx, opts)
}

// readPair reads the two positional files. A missing RIGHT compares against empty text.
func readPair(fs *flag.FlagSet) (left, right string, err error) {
    if fs.NArg() < 1 || fs.NArg() > 2 {
        return "", "", errors.New("want LEFT [RIGHT] files")
    }
    b, err := os.ReadFile(fs.Arg(0))
    if err != nil {
        return "", "", err
    }
    left = string(b)
    if fs.NArg() == 2 {
        b, err = os.ReadFile(fs.Arg(1))
        if err != nil {
            return "", "", err
        }
        right = string(b)
    }
    return left, right, nil
}

// pairLanguage is the --lang value, else the language of the first file name that has one.
func pairLanguage(flagLang string, fs *flag.FlagSet, left string) string {
    if flagLang != "" {
        return flagLang
    }
    for _, name := range fs.Args() {
        if l := lang.FromFilename(name); l != lang.Plaintext {
            return l
        }
    }
    return lang.FromContent(left)
}

func cmdShare(args []string) error {
    fs := flag.NewFlagSet("share", flag.ExitOnError)
    base := fs.String("base-url", "", "Origin and path the link points at (default: config server.base_url)")
    language := fs.String("lang", "", "Language id (default: detected)")
    cfgPath := fs.String("config", "", "Config file (TOML, YAML or JSON)")
    _ = fs.Parse(args)

    left, right, err := readPair(fs)
    if err != nil {
        return err
    }
    if *base == "" {
        c, err := loadConfig(*cfgPath)
        if err != nil {
            return err
        }
        *base = c.Server.BaseURL
        if *base == "" && c.Server.Addr != ports.Auto {
            *base = ports.LocalURL(c.Server.Addr) + "/"
        }
    }
    env := share.NewEnvelope(left, right, pairLanguage(*language, fs, left), time.Now())
    sh, err := share.Build(env, *base)
    if err != nil {
        return err
    }
    fmt.Println(sh.URL)
    if !sh.SizeSafe {
        fmt.Fprintf(os.Stderr, "warning: link is %d characters; some browsers and chat clients truncate links this long\n", sh.Length())
    }
    return nil
}

func cmdExport(args []string) error {
    fs := flag.NewFlagSet("export", flag.ExitOnError)
    out := fs.String("o", "", "Output file (default: quickdiff-<date>.qdiff)")
    language := fs.String("lang", "", "Language id (default: detected)")
    _ = fs.Parse(args)

    left, right, err := readPair(fs)
    if err != nil {
        return err
    }
    now := time.Now()
    data, err := share.MarshalFile(share.NewEnvelope(left, right, pairLanguage(*language, fs, left), now))
    if err != nil {
        return err
    }
    path := *out
    if path == "" {
        path = share.ExportName(now)
    }
    if err := os.WriteFile(path, data, 0o644); err != nil {
        return fmt.Errorf("write %s: %w", path, err)
    }
    fmt.Println("Exported", path)
    return nil
}

func cmdOpen(args []string) error {
    fs := flag.NewFlagSet("open", flag.ExitOnError)
    fs.Usage = func() { helpTopic("open") }
    leftOut := fs.String("left", "", "Write the left text to this file")
    rightOut := fs.String("right", "", "Write the right text to this file")
    _ = fs.Parse(args)
    if fs.NArg() != 1 {
        return errors.New("want one LINK or TOKEN")
    }

    env, err := decodeArg(fs.Arg(0))
    if err != nil {
        return err
    }
    if *leftOut == "" && *rightOut == "" {
        data, err := share.MarshalFile(env)
        if err != nil {
            return err
        }
        fmt.Println(string(data))
        return nil
    }
    for _, f := range []struct{ path, text string }{{*leftOut, env.Left}, {*rightOut, env.Right}} {
        if f.path == "" {
            continue
        }
        if dir := filepath.Dir(f.path); dir != "." && dir != "" {
            _ = os.MkdirAll(dir, 0o755)
        }
        if err := os.WriteFile(f.path, []byte(f.text), 0o644); err != nil {
            return fmt.Errorf("write %s: %w", f.path, err)
        }
    }
    return nil
}

// decodeArg accepts a link or fragment carrying "share=", or a bare token.
func decodeArg(s string) (share.Envelope, error) {
    if token, ok := share.TokenFromFragment(s); ok {
        return share.Decode(token)
    }
    return share.Decode(s)
}

func cmdPatch(args []string) error {
    fs := flag.NewFlagSet("patch", flag.ExitOnError)
    out := fs.String("o", "", "Write the patch to this file instead of stdout")
    _ = fs.Parse(args)

    left, right, err := readPair(fs)
    if err != nil {
        return err
    }
    p := patch.Naive(left, right)
    if *out == "" {
        fmt.Print(p)
        return nil
    }
    if err := os.WriteFile(*out, []byte(p), 0o644); err != nil {
        return fmt.Errorf("write %s: %w", *out, err)
    }
    fmt.Println("Patch file saved:", *out)
    return nil
}

func cmdHealth(args []string) error {
    fs := flag.NewFlagSet("health", flag.ExitOnError)
    url := fs.String("url", "", "Server base URL (default: from config server.addr)")
    wait := fs.Duration("wait", 0, "Wait this long for the server to come up")
    cfgPath := fs.String("config", "", "Config file (TOML, YAML or JSON)")
    _ = fs.Parse(args)

    base := *url
    if base == "" {
        c, err := loadConfig(*cfgPath)
        if err != nil {
            return err
        }
        base = ports.LocalURL(c.Server.Addr)
    }
    ctx := context.Background()
    if *wait > 0 {
        if err := httpx.WaitHTTPUp(ctx, base+httpx.HealthPath, *wait); err != nil {
            return err
        }
    }
    status, err := httpx.Health(ctx, base)
    if err != nil {
        return err
    }
    fmt.Println(status)
    return nil
}

func openLogFile(path string) (*os.File, error) {
    if path == "" {
        return nil, nil
    }
    path, err := config.ExpandPath(path)
    if err != nil {
        return nil, err
    }
    if dir := filepath.Dir(path); dir != "." && dir != "" {
        _ = os.MkdirAll(dir, 0o755)
    }
    f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
    if err != nil {
        return nil, err
    }
    _, _ = fmt.Fprintf(f, "=== quickdiff %s started at %s ===\n", Version, time.Now().Format(time.RFC3339))
    return f, nil
}
