package main

import (
	"fmt"
	"image"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gocaustics/pkg/analysis"
	"github.com/philipparndt/gocaustics/pkg/obj"
	"github.com/philipparndt/gocaustics/pkg/optics"
	"github.com/philipparndt/gocaustics/pkg/render"
)

const (
	defaultEta      = 1.457
	defaultDistance = -10.0
	minDistance     = -100.0
	maxDistance     = 0.0
)

type App struct {
	window   fyne.Window
	field    *optics.Field
	mesh     *obj.Mesh
	distance float64

	patternImage  *canvas.Image
	distanceLabel *widget.Label
	slider        *widget.Slider
	statsLabel    *widget.Label
	meshInfoLabel *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("Caustics - Lens Pattern Viewer")

	appInstance := &App{
		window:   w,
		distance: defaultDistance,
	}

	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1000, 760))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to Caustics")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open OBJ File' to load a lens surface mesh")

	openButton := widget.NewButton("Open OBJ File", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	mesh, err := obj.Parse(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load OBJ file: %w", err), a.window)
		return
	}

	field, err := optics.NewField(mesh, defaultEta, optics.DefaultBeam())
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to refract mesh: %w", err), a.window)
		return
	}

	a.mesh = mesh
	a.field = field
	a.setupMainUI()
}

func (a *App) setupMainUI() {
	a.patternImage = canvas.NewImageFromImage(a.renderPattern())
	a.patternImage.FillMode = canvas.ImageFillContain
	a.patternImage.ScaleMode = canvas.ImageScalePixels
	a.patternImage.SetMinSize(fyne.NewSize(512, 512))

	a.distanceLabel = widget.NewLabel("")
	a.distanceLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.statsLabel = widget.NewLabel("")
	a.meshInfoLabel = widget.NewLabel("")

	a.slider = widget.NewSlider(minDistance, maxDistance)
	a.slider.Step = 0.1
	a.slider.Value = a.distance
	a.slider.OnChanged = func(value float64) {
		a.setDistance(value)
	}

	stepButton := func(label string, step float64) *widget.Button {
		return widget.NewButton(label, func() {
			a.slider.SetValue(a.distance + step)
		})
	}

	stepRow := container.NewGridWithColumns(4,
		stepButton("-1.0", -1.0),
		stepButton("-0.1", -0.1),
		stepButton("+0.1", 0.1),
		stepButton("+1.0", 1.0),
	)

	openButton := widget.NewButton("Open File", func() {
		a.showFileDialog()
	})

	saveButton := widget.NewButton("Save Image", func() {
		if err := render.Save("caustics.png", a.renderPattern()); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Saved", "Pattern written to caustics.png", a.window)
	})

	infoPanel := container.NewVBox(
		widget.NewLabel("Mesh:"),
		widget.NewSeparator(),
		a.meshInfoLabel,
		widget.NewSeparator(),
		widget.NewLabel("Receiver plane:"),
		a.distanceLabel,
		a.slider,
		stepRow,
		widget.NewSeparator(),
		widget.NewLabel("Pattern:"),
		a.statsLabel,
		widget.NewSeparator(),
		openButton,
		saveButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,            // top
		nil,            // bottom
		nil,            // left
		infoScroll,     // right
		a.patternImage, // center
	)

	a.window.SetContent(content)
	a.refreshLabels()
}

func (a *App) setDistance(distance float64) {
	a.distance = distance
	a.patternImage.Image = a.renderPattern()
	a.patternImage.Refresh()
	a.refreshLabels()
}

// renderPattern projects at the current distance and rasterizes the
// pattern into a fitted frame
func (a *App) renderPattern() *image.RGBA {
	hits := a.field.Project(a.distance)
	return render.Plot(hits, render.Options{
		Width:      render.NominalSize * 2,
		Height:     render.NominalSize * 2,
		Accumulate: true,
	})
}

func (a *App) refreshLabels() {
	a.distanceLabel.SetText(fmt.Sprintf("Distance: %.2f", a.distance))

	result := analysis.AnalyzeField(a.field, a.distance)

	bbox := a.mesh.BoundingBox()
	a.meshInfoLabel.SetText(fmt.Sprintf(
		"Name: %s\nVertices: %d\nExtent Z: %.2f to %.2f",
		a.mesh.Name,
		a.mesh.VertexCount(),
		bbox.Min.Z,
		bbox.Max.Z,
	))

	stats := fmt.Sprintf(
		"Hits: %d\nMisses: %d\nTIR: %d\nDegenerate: %d",
		result.HitCount,
		result.MissCount,
		result.TIRCount,
		result.DegenerateCount,
	)
	if result.HitCount > 0 {
		stats += fmt.Sprintf("\nCentroid: %s\nRMS spread: %.4f",
			analysis.FormatPoint(result.Centroid),
			result.RMSSpread,
		)
	}
	a.statsLabel.SetText(stats)
}
