package main

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lumiere/pkg/resource"
	"lumiere/pkg/ui"
	"lumiere/pkg/viewstate"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "lumiere [URL]",
	Short: "A minimal image viewer for the desktop",
	Long: `lumiere opens a single window with a URL bar. Enter an image URL and it is
fetched and displayed; double-click the image or use the floating "+" menu to
go fullscreen. An optional URL argument is loaded at startup as if typed.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runViewer,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lumiere.yaml)")
	rootCmd.Flags().Int("width", 0, "window width in pixels (overrides config)")
	rootCmd.Flags().Int("height", 0, "window height in pixels (overrides config)")
}

// initConfig reads in the config file and matching environment variables.
func initConfig() {
	viper.SetConfigFile(getCfgFile(cfgFile))

	viper.SetDefault("window.width", 1024)
	viper.SetDefault("window.height", 768)

	viper.SetDefault("http.timeout", resource.DefaultTimeout.String())
	viper.SetDefault("http.user-agent", resource.DefaultUserAgent)

	viper.SetDefault("log.enabled", false)
	viper.SetDefault("log.level", log.InfoLevel.String())
	viper.SetDefault("log.path", "./lumiere.log")

	viper.AutomaticEnv()

	// Missing config files are fine; the defaults carry the app.
	_ = viper.ReadInConfig()
}

// initLogging sets up logrus from the log.* config tree. Logging is off by
// default so a GUI session leaves no files behind unless asked to.
func initLogging() {
	formatter := new(log.TextFormatter)
	formatter.DisableTimestamp = true
	log.SetFormatter(formatter)

	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if !viper.GetBool("log.enabled") {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(viper.GetString("log.path"), os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
	log.Debug("starting lumiere")
}

// getCfgFile checks XDG config paths and ~/.config/lumiere for a yaml file,
// defaulting to ~/.lumiere.yaml.
func getCfgFile(fromFlag string) string {
	if fromFlag != "" {
		return fromFlag
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".lumiere.yaml"
	}

	xdgHome := os.Getenv("XDG_CONFIG_HOME")
	xdgDirs := os.Getenv("XDG_CONFIG_DIRS")
	xdgPaths := append([]string{xdgHome}, strings.Split(xdgDirs, ":")...)
	allDirs := append(xdgPaths, path.Join(home, ".config"))

	for _, dir := range allDirs {
		if file := findInPath(dir); file != "" {
			return file
		}
	}
	return path.Join(home, ".lumiere.yaml")
}

// findInPath returns the first *.yaml file in dir's "lumiere" subdirectory.
func findInPath(dir string) string {
	entries, err := os.ReadDir(path.Join(dir, "lumiere"))
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if path.Ext(entry.Name()) == ".yaml" {
			return path.Join(dir, "lumiere", entry.Name())
		}
	}
	return ""
}

func runViewer(cmd *cobra.Command, args []string) {
	initLogging()

	width := viper.GetInt("window.width")
	height := viper.GetInt("window.height")
	if w, _ := cmd.Flags().GetInt("width"); w > 0 {
		width = w
	}
	if h, _ := cmd.Flags().GetInt("height"); h > 0 {
		height = h
	}

	fetcher := resource.NewHTTPFetcher()
	fetcher.SetTimeout(viper.GetDuration("http.timeout"))
	fetcher.SetUserAgent(viper.GetString("http.user-agent"))

	a := app.New()
	win := a.NewWindow("lumiere")
	win.Resize(fyne.NewSize(float32(width), float32(height)))

	state := viewstate.New()
	surface := ui.New(state, fetcher, ui.NewWindowFullscreen(win), fyne.Do)

	win.SetContent(surface.Content())
	surface.AttachKeyboard(win.Canvas())
	surface.FocusEntry(win.Canvas())

	if len(args) == 1 {
		surface.Submit(args[0])
	}

	log.WithFields(log.Fields{"width": width, "height": height}).Info("window open")
	win.ShowAndRun()
}
