package main

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/term"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/termgrid"
	"github.com/BeatGlow/termgrid/draw"
	"github.com/BeatGlow/termgrid/pixel"
	"github.com/BeatGlow/termgrid/tty"
)

var rootCmd = &cobra.Command{
	Use:          "termgrid-demo",
	Short:        "termgrid demo loop",
	Long:         "Draws a moving line on a full screen grid. Use w/a/s/d to move the line end, q to quit.",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			if configFlag != "" {
				var c demoConfig
				if err := c.DeserializeFromFile(configFlag); err != nil {
					return errors.Wrap(err, 0)
				}
				c.apply(cmd.Flags().Changed)
			}
			return demo()
		})
	},
}

var (
	debugFlag    bool
	configFlag   string
	widthFlag    int
	heightFlag   int
	fpsFlag      int
	bgFlag       string
	bannerFlag   string
	fontFlag     string
	fontSizeFlag float64
	imageFlag    string
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.Flags().BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors`)
	rootCmd.Flags().StringVarP(&configFlag, `config`, `c`, ``, `YAML file with flag defaults`)
	rootCmd.Flags().IntVar(&widthFlag, `width`, 0, `grid width (0: fit terminal)`)
	rootCmd.Flags().IntVar(&heightFlag, `height`, 0, `grid height (0: fit terminal)`)
	rootCmd.Flags().IntVar(&fpsFlag, `fps`, 30, `frames per second`)
	rootCmd.Flags().StringVar(&bgFlag, `bg`, `navy`, `background color name or #rrggbb`)
	rootCmd.Flags().StringVar(&bannerFlag, `banner`, `termgrid`, `banner text`)
	rootCmd.Flags().StringVar(&fontFlag, `font`, ``, `TrueType font file for the banner`)
	rootCmd.Flags().Float64Var(&fontSizeFlag, `font-size`, 8, `banner font size`)
	rootCmd.Flags().StringVar(&imageFlag, `image`, ``, `image file to show next to the banner`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(fn func() error) {
	if err := fn(); err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
			fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
			os.Exit(1)
		}
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}

// scene is everything drawn each frame.
type scene struct {
	bg     pixel.Color
	face   font.Face
	banner string
	pic    image.Image
	end    image.Point
	frames int
}

func demo() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("standard input and output must be a terminal")
	}
	if fpsFlag <= 0 {
		return errors.Errorf("invalid frame rate %d", fpsFlag)
	}

	width, height := widthFlag, heightFlag
	if width <= 0 || height <= 0 {
		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			return errors.Wrap(err, 0)
		}
		// Every row ends in a newline, the last one would scroll the terminal.
		width, height = w, h-1
	}

	bg, err := pixel.ParseColor(bgFlag)
	if err != nil {
		return errors.Wrap(err, 0)
	}

	s := &scene{
		bg:     bg,
		face:   basicfont.Face7x13,
		banner: bannerFlag,
		end:    image.Pt(width*3/4, height/2),
	}
	if fontFlag != "" {
		ttf, err := os.ReadFile(fontFlag)
		if err != nil {
			return errors.Wrap(err, 0)
		}
		if s.face, err = draw.ParseFace(ttf, fontSizeFlag); err != nil {
			return errors.Wrap(err, 0)
		}
	}
	if imageFlag != "" {
		if s.pic, err = loadImage(imageFlag); err != nil {
			return errors.Wrap(err, 0)
		}
	}

	rate := physic.Frequency(fpsFlag) * physic.Hertz
	log.Printf("termgrid-demo: %dx%d at %s", width, height, rate)

	ctrl, err := tty.New()
	if err != nil {
		return errors.Wrap(err, 0)
	}
	if err = ctrl.SaveState(); err != nil {
		return errors.Wrap(err, 0)
	}
	defer ctrl.RestoreState()
	if err = ctrl.EnableRawInput(); err != nil {
		return errors.Wrap(err, 0)
	}

	screen := termgrid.NewScreen(os.Stdout, width, height)
	if err = screen.ClearTerminal(); err != nil {
		return errors.Wrap(err, 0)
	}
	if err = screen.HideCursor(); err != nil {
		return errors.Wrap(err, 0)
	}
	defer func() {
		_ = screen.ShowCursor()
		_ = screen.ClearTerminal()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(rate.Period())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		quit, err := s.input(ctrl, screen.Bounds())
		if err != nil {
			return errors.Wrap(err, 0)
		}
		if quit {
			return nil
		}

		s.render(screen.Buffer)
		if err = screen.Refresh(); err != nil {
			return errors.Wrap(err, 0)
		}
	}
}

// input drains pending key presses.
func (s *scene) input(ctrl *tty.Controller, bounds image.Rectangle) (bool, error) {
	for {
		ch, ok, err := ctrl.Getch(0)
		if err != nil || !ok {
			return false, err
		}
		switch ch {
		case 'q', 'Q', 0x1b:
			return true, nil
		case 'w':
			s.end.Y--
		case 's':
			s.end.Y++
		case 'a':
			s.end.X--
		case 'd':
			s.end.X++
		}
		s.end.X = max(bounds.Min.X, min(s.end.X, bounds.Max.X-1))
		s.end.Y = max(bounds.Min.Y, min(s.end.Y, bounds.Max.Y-1))
	}
}

func (s *scene) render(b *termgrid.Buffer) {
	w, h := b.Width(), b.Height()
	s.frames++

	b.Clear(' ', pixel.Default, s.bg)
	b.Rect(0, 0, w, h,
		pixel.Cell{Ch: '#', Fg: pixel.Cyan, Bg: pixel.Black},
		pixel.Cell{Ch: ' ', Fg: pixel.White, Bg: s.bg})

	banner := b.Text(2, 1, s.face, s.banner, pixel.Cell{Ch: '█', Fg: pixel.Yellow, Bg: pixel.Default})
	if s.pic != nil {
		x := banner.Max.X + 2
		b.Picture(x, 1, min(w-x-1, 2*banner.Dy()), banner.Dy(), s.pic)
	}

	// Sweep the line start along the bottom border.
	span := max(w-2, 1)
	start := image.Pt(1+s.frames%span, h-2)
	b.Line(start.X, start.Y, s.end.X, s.end.Y, '*', pixel.Orange, pixel.Default)
	b.Pixel(s.end.X, s.end.Y, '@', pixel.Red, pixel.Default)

	b.HorizontalText(2, h-1, fmt.Sprintf(" frame %d, end %d,%d ", s.frames, s.end.X, s.end.Y), pixel.White, pixel.Purple)
	b.VerticalText(w-1, 1, "wasd", pixel.Magenta, pixel.Default)
}

func loadImage(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}
