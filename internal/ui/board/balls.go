package board

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Ball is a snooker ball colour and its value.
type Ball struct {
	Name   string
	Points int
	Color  color.NRGBA
}

// Balls lists the colours from red (1) to black (7).
var Balls = []Ball{
	{Name: "red", Points: 1, Color: color.NRGBA{R: 200, G: 16, B: 24, A: 255}},
	{Name: "yellow", Points: 2, Color: color.NRGBA{R: 240, G: 200, B: 20, A: 255}},
	{Name: "green", Points: 3, Color: color.NRGBA{R: 16, G: 140, B: 60, A: 255}},
	{Name: "brown", Points: 4, Color: color.NRGBA{R: 120, G: 72, B: 32, A: 255}},
	{Name: "blue", Points: 5, Color: color.NRGBA{R: 24, G: 72, B: 200, A: 255}},
	{Name: "pink", Points: 6, Color: color.NRGBA{R: 240, G: 120, B: 170, A: 255}},
	{Name: "black", Points: 7, Color: color.NRGBA{R: 12, G: 12, B: 12, A: 255}},
}

const ballDiameter = 40

// ballButton is a round tappable button showing a ball's value.
type ballButton struct {
	widget.BaseWidget
	ball     Ball
	OnTapped func(points int)
}

func newBallButton(ball Ball, onTapped func(points int)) *ballButton {
	button := &ballButton{ball: ball, OnTapped: onTapped}
	button.ExtendBaseWidget(button)
	return button
}

func (button *ballButton) CreateRenderer() fyne.WidgetRenderer {
	circle := canvas.NewCircle(button.ball.Color)
	circle.StrokeColor = color.White
	circle.StrokeWidth = 2

	label := canvas.NewText(strconv.Itoa(button.ball.Points), color.White)
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.TextSize = 14
	label.Alignment = fyne.TextAlignCenter

	return widget.NewSimpleRenderer(container.NewStack(circle, container.NewCenter(label)))
}

func (button *ballButton) MinSize() fyne.Size {
	return fyne.NewSize(ballDiameter, ballDiameter)
}

func (button *ballButton) Tapped(*fyne.PointEvent) {
	if button.OnTapped != nil {
		button.OnTapped(button.ball.Points)
	}
}
