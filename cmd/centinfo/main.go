// Command centinfo initialises SDL and its satellite libraries and reports what the machine offers.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ignite-laboratories/centurion"
	"github.com/ignite-laboratories/centurion/audio"
	"github.com/ignite-laboratories/centurion/hint"
	"github.com/ignite-laboratories/centurion/system"
	"github.com/ignite-laboratories/centurion/video"
	"github.com/ignite-laboratories/centurion/video/opengl"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Width(16)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

func main() {
	var (
		debug    = flag.Bool("debug", false, "Log resource lifecycles to stderr")
		headless = flag.Bool("headless", false, "Use the dummy video and audio drivers")
		withGL   = flag.Bool("gl", false, "Create a hidden OpenGL window and report the driver version")
		noAudio  = flag.Bool("no-audio", false, "Skip SDL_mixer and the audio device")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
		centurion.SetLogger(logger)
	}

	if *headless {
		hint.Set(hint.VideoDriver, "dummy")
		hint.Set(hint.AudioDriver, "dummy")
	}

	if err := run(*withGL, !*noAudio); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func run(withGL, withAudio bool) error {
	cfg := centurion.DefaultConfig()
	cfg.Pinned = true
	if !withAudio {
		cfg.Mixer = false
		cfg.CoreFlags &^= centurion.InitAudio
	}

	lib, err := centurion.Init(cfg)
	if err != nil {
		return err
	}
	defer lib.Close()

	var out strings.Builder
	lib.Do(func() {
		versions(&out)
		machine(&out)
		displays(&out)
		if withAudio {
			mixer(&out)
		}
		if withGL {
			err = openGL(&out)
		}
	})
	fmt.Print(out.String())
	return err
}

func section(out *strings.Builder, title string) {
	out.WriteString("\n" + titleStyle.Render(title) + "\n")
}

func row(out *strings.Builder, key string, value any) {
	out.WriteString(keyStyle.Render(key) + valueStyle.Render(fmt.Sprint(value)) + "\n")
}

func failure(out *strings.Builder, key string, err error) {
	out.WriteString(keyStyle.Render(key) + errorStyle.Render(err.Error()) + "\n")
}

func versions(out *strings.Builder) {
	section(out, "Versions")
	row(out, "SDL", fmt.Sprintf("%v (compiled %v)", centurion.LinkedSDLVersion(), centurion.CompiledSDLVersion()))
	row(out, "SDL_image", fmt.Sprintf("%v (compiled %v)", centurion.LinkedIMGVersion(), centurion.CompiledIMGVersion()))
	row(out, "SDL_mixer", fmt.Sprintf("%v (compiled %v)", centurion.LinkedMIXVersion(), centurion.CompiledMIXVersion()))
	row(out, "SDL_ttf", fmt.Sprintf("%v (compiled %v)", centurion.LinkedTTFVersion(), centurion.CompiledTTFVersion()))
}

func machine(out *strings.Builder) {
	section(out, "System")
	row(out, "Platform", system.PlatformName())
	row(out, "CPUs", system.CPUCount())
	row(out, "Cache line", fmt.Sprintf("%d B", system.CacheLineSize()))
	row(out, "RAM", fmt.Sprintf("%d MiB", system.RAM()))
	row(out, "SIMD", strings.Join(system.DetectSIMD().Names(), " "))

	power := system.Power()
	row(out, "Power", power.State)
	if pct, ok := power.Percentage(); ok {
		row(out, "Battery", fmt.Sprintf("%d%%", pct))
	}
	if left, ok := power.Remaining(); ok {
		row(out, "Remaining", left)
	}
}

func displays(out *strings.Builder) {
	section(out, "Displays")
	count, err := video.DisplayCount()
	if err != nil {
		failure(out, "Count", err)
		return
	}
	row(out, "Count", count)
	for i := range count {
		name, _ := video.DisplayName(i)
		mode, err := video.CurrentDisplayMode(i)
		if err != nil {
			failure(out, name, err)
			continue
		}
		row(out, fmt.Sprintf("[%d] %s", i, name),
			fmt.Sprintf("%dx%d @ %dHz %v", mode.Size.Width, mode.Size.Height, mode.RefreshRate, mode.Format))
	}
}

func mixer(out *strings.Builder) {
	section(out, "Audio")
	spec, err := audio.Opened()
	if err != nil {
		failure(out, "Device", err)
		return
	}
	row(out, "Frequency", fmt.Sprintf("%d Hz", spec.Frequency))
	row(out, "Format", spec.Format)
	row(out, "Channels", spec.Channels)
	row(out, "Mixing", audio.ChannelCount())
}

func openGL(out *strings.Builder) error {
	section(out, "OpenGL")
	if err := opengl.Apply(); err != nil {
		return err
	}
	window, err := video.NewWindow("centinfo", &video.Area{Width: 64, Height: 64}, video.WindowOpenGL|video.WindowHidden)
	if err != nil {
		return errors.Wrap(err, "creating the GL window")
	}
	defer window.Close()

	ctx, err := opengl.NewContext(window)
	if err != nil {
		return errors.Wrap(err, "creating the OpenGL context")
	}
	defer ctx.Close()

	if err := opengl.LoadFunctions(); err != nil {
		return err
	}
	row(out, "Requested", fmt.Sprintf("%d.%d %v", opengl.GLVersion.Major, opengl.GLVersion.Minor, opengl.GLVersion.Profile))
	row(out, "Driver", opengl.Version())
	return nil
}
