package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"go.uber.org/zap"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"git.sr.ht/~whereswaldon/runway/backend"
	"git.sr.ht/~whereswaldon/runway/chart"
	"git.sr.ht/~whereswaldon/runway/config"
	"git.sr.ht/~whereswaldon/runway/theme"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

const (
	tabProjection = "projection"
	tabBreakdown  = "breakdown"
)

func mustIcon(data []byte) *widget.Icon {
	icon, _ := widget.NewIcon(data)
	return icon
}

var (
	themeIcon = mustIcon(icons.ImageBrightness6)
	openIcon  = mustIcon(icons.FileFolderOpen)
	editIcon  = mustIcon(icons.EditorModeEdit)
	doneIcon  = mustIcon(icons.ActionDone)
)

// UI is responsible for holding the state of and drawing the top-level UI.
type UI struct {
	ws   backend.WindowState
	expl *explorer.Explorer
	log  *zap.Logger
	cfg  *config.Config

	mode    theme.Mode
	edit    theme.EditMode
	palette theme.Palette
	th      *material.Theme

	chart ChartView
	donut DonutView
	// left is the plot's left inset in Dp. Edit mode cycles it through
	// leftPresets.
	left        float64
	leftPresets [2]float64
	leftIdx     int

	tab      widget.Enum
	themeBtn widget.Clickable
	openBtn  widget.Clickable
	editBtn  widget.Clickable
	insetBtn widget.Clickable
	opened   chan string
	openErr  string
	choosing bool

	snapStream *stream.Stream[backend.Snapshot]
	snap       backend.Snapshot
}

func NewUI(ws backend.WindowState, expl *explorer.Explorer, cfg *config.Config) *UI {
	ui := &UI{
		ws:     ws,
		expl:   expl,
		log:    ws.Bundle.Log,
		cfg:    cfg,
		mode:   cfg.Mode(),
		tab:    widget.Enum{Value: tabProjection},
		opened: make(chan string, 1),
		left:   cfg.ChartInsets().Left,
		leftPresets: [2]float64{
			chart.DashboardInsets.Left,
			chart.SimulatorInsets.Left,
		},
	}
	if ui.left == ui.leftPresets[1] {
		ui.leftIdx = 1
	}
	ui.th = newTheme(ui.mode.Palette())
	ui.setMode(ui.mode)
	ui.watch(ws.Bundle.Source)
	return ui
}

func (ui *UI) watch(src *backend.Source) {
	ui.snap = backend.Snapshot{Path: src.Path()}
	ui.snapStream = stream.New(ui.ws.Controller, src.Snapshots)
}

func (ui *UI) setMode(m theme.Mode) {
	ui.mode = m
	ui.palette = m.Palette()
	applyPalette(ui.th, ui.palette)
	ui.chart.Config = ui.cfg.Chart(ui.palette)
	ui.chart.Config.Insets.Left = ui.left
	ui.donut = DonutView{StrokeWidth: 24, TextColor: ui.palette.Text}
}

// openTimeline asks the user for a timeline file without blocking the frame.
func (ui *UI) openTimeline() {
	ui.choosing = true
	go func() {
		path, err := ui.chooseFile()
		if err != nil {
			ui.log.Warn("failed choosing timeline", zap.Error(err))
		}
		ui.opened <- path
		ui.ws.Invalidate()
	}()
}

func (ui *UI) chooseFile() (string, error) {
	f, err := ui.expl.ChooseFile(".json")
	if err != nil {
		return "", err
	}
	defer f.Close()
	named, ok := f.(interface{ Name() string })
	if !ok {
		return "", errors.New("chosen file has no path on this platform")
	}
	return named.Name(), nil
}

// Update the state of the UI from input and streams. Called once per frame
// before layout.
func (ui *UI) Update(gtx C) {
	ui.snapStream.ReadInto(gtx, &ui.snap, ui.snap)
	ui.tab.Update(gtx)
	select {
	case path := <-ui.opened:
		ui.choosing = false
		if path != "" {
			ui.log.Info("opening timeline", zap.String("path", path))
			ui.watch(ui.ws.Bundle.Open(path))
		}
	default:
	}
	if ui.themeBtn.Clicked(gtx) {
		ui.setMode(ui.mode.Toggle())
	}
	if !ui.choosing && ui.openBtn.Clicked(gtx) {
		ui.openTimeline()
	}
	if ui.editBtn.Clicked(gtx) {
		ui.edit = ui.edit.Toggle()
	}
	if ui.edit == theme.Editing && ui.insetBtn.Clicked(gtx) {
		ui.leftIdx = (ui.leftIdx + 1) % len(ui.leftPresets)
		ui.left = ui.leftPresets[ui.leftIdx]
		ui.chart.Config.Insets.Left = ui.left
		ui.log.Debug("switched left inset", zap.Float64("left", ui.left))
	}
	if ui.snap.Err != nil {
		ui.openErr = ui.snap.Err.Error()
	} else {
		ui.openErr = ""
	}
}

type TabStyle struct {
	state  *widget.Enum
	label  material.LabelStyle
	border widget.Border
	inset  layout.Inset
	value  string
	fill   color.NRGBA
}

func Tab(th *material.Theme, state *widget.Enum, value, display string) TabStyle {
	ts := TabStyle{
		state: state,
		label: material.Body1(th, display),
		inset: layout.UniformInset(2),
		border: widget.Border{
			Width:        1,
			CornerRadius: 4,
			Color:        th.ContrastBg,
		},
		value: value,
	}
	ts.label.Alignment = text.Middle
	if state.Value == value {
		ts.label.Color = th.ContrastFg
		ts.fill = th.ContrastBg
	}
	return ts
}

func (t TabStyle) Layout(gtx C) D {
	return t.inset.Layout(gtx, func(gtx C) D {
		return t.border.Layout(gtx, func(gtx C) D {
			return t.state.Layout(gtx, t.value, func(gtx C) D {
				return layout.Background{}.Layout(gtx, func(gtx C) D {
					paint.FillShape(gtx.Ops, t.fill, clip.Rect{Max: gtx.Constraints.Min}.Op())
					return D{Size: gtx.Constraints.Min}
				}, func(gtx C) D {
					return t.inset.Layout(gtx, t.label.Layout)
				})
			})
		})
	})
}

func (ui *UI) iconButton(btn *widget.Clickable, icon *widget.Icon, desc string) layout.Widget {
	return func(gtx C) D {
		b := material.IconButton(ui.th, btn, icon, desc)
		b.Size = 20
		b.Inset = layout.UniformInset(6)
		return layout.UniformInset(2).Layout(gtx, b.Layout)
	}
}

func (ui *UI) layoutToolbar(gtx C) D {
	edit := editIcon
	if ui.edit == theme.Editing {
		edit = doneIcon
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, Tab(ui.th, &ui.tab, tabProjection, "Projection").Layout),
		layout.Flexed(1, Tab(ui.th, &ui.tab, tabBreakdown, "Breakdown").Layout),
		layout.Rigid(func(gtx C) D {
			if ui.choosing {
				gtx = gtx.Disabled()
			}
			return ui.iconButton(&ui.openBtn, openIcon, "Open Timeline")(gtx)
		}),
		layout.Rigid(ui.iconButton(&ui.themeBtn, themeIcon, "Toggle theme")),
		layout.Rigid(ui.iconButton(&ui.editBtn, edit, ui.edit.String())),
	)
}

func (ui *UI) layoutEditBar(gtx C) D {
	if ui.edit != theme.Editing {
		return D{}
	}
	return layout.UniformInset(4).Layout(gtx, func(gtx C) D {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(material.Body2(ui.th, fmt.Sprintf("Left inset: %gdp", ui.chart.Config.Insets.Left)).Layout),
			layout.Rigid(layout.Spacer{Width: 8}.Layout),
			layout.Rigid(material.Button(ui.th, &ui.insetBtn, "Switch preset").Layout),
		)
	})
}

func (ui *UI) layoutLegend(gtx C) D {
	entry := func(c color.NRGBA, name string) layout.FlexChild {
		return layout.Rigid(func(gtx C) D {
			return layout.Inset{Right: 12}.Layout(gtx, func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx C) D {
						sz := image.Pt(gtx.Dp(16), gtx.Dp(3))
						paint.FillShape(gtx.Ops, c, clip.Rect{Max: sz}.Op())
						return D{Size: sz}
					}),
					layout.Rigid(layout.Spacer{Width: 4}.Layout),
					layout.Rigid(material.Body2(ui.th, name).Layout),
				)
			})
		})
	}
	return layout.UniformInset(4).Layout(gtx, func(gtx C) D {
		return layout.Flex{}.Layout(gtx,
			entry(ui.chart.Config.Primary.Color, "On pace"),
			entry(ui.chart.Config.Secondary.Color, "Plan"),
		)
	})
}

func (ui *UI) layoutMainArea(gtx C) D {
	primary, secondary := ui.snap.Doc.Series()
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(ui.layoutToolbar),
		layout.Rigid(ui.layoutEditBar),
		layout.Rigid(func(gtx C) D {
			if len(ui.openErr) == 0 {
				return D{}
			}
			l := material.Body2(ui.th, ui.openErr)
			l.Color = ui.palette.AccentPink
			return l.Layout(gtx)
		}),
		layout.Flexed(1, func(gtx C) D {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
				if ui.tab.Value == tabBreakdown {
					return ui.donut.Layout(gtx, ui.th, ui.snap.Doc.Slices(ui.palette))
				}
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Flexed(1, func(gtx C) D {
						return ui.chart.Layout(gtx, ui.th, primary, secondary)
					}),
					layout.Rigid(ui.layoutLegend),
				)
			})
		}),
	)
}

func (ui *UI) layoutStartScreen(gtx C) D {
	msg := "Waiting for " + ui.snap.Path
	if len(ui.openErr) > 0 {
		msg = ui.openErr
	}
	return layout.Flex{
		Axis:      layout.Vertical,
		Alignment: layout.Middle,
		Spacing:   layout.SpaceAround,
	}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return material.Body1(ui.th, msg).Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			if ui.choosing {
				gtx = gtx.Disabled()
			}
			return material.Button(ui.th, &ui.openBtn, "Open Timeline").Layout(gtx)
		}),
	)
}

// Layout the UI into the provided context.
func (ui *UI) Layout(gtx C) D {
	ui.Update(gtx)
	paint.Fill(gtx.Ops, ui.palette.Background)
	if ui.snap.Valid() {
		return ui.layoutMainArea(gtx)
	}
	return ui.layoutStartScreen(gtx)
}
