package gotext

import (
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"golang.org/x/image/math/fixed"
)

func TestParagraphDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want di.Direction
	}{
		{"latin", "hello world", di.DirectionLTR},
		{"hebrew", "שלום", di.DirectionRTL},
		{"arabic", "مرحبا", di.DirectionRTL},
		{"empty", "", di.DirectionLTR},
		{"digits", "123", di.DirectionLTR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := paragraphDirection(tt.text); got != tt.want {
				t.Errorf("paragraphDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectScript(t *testing.T) {
	tests := []struct {
		name string
		text string
		want language.Script
	}{
		{"latin", "hello", language.Latin},
		{"leading spaces", "  hello", language.Latin},
		{"only spaces", "   ", language.Latin},
		{"arabic", "مرحبا", language.Arabic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectScript([]rune(tt.text)); got != tt.want {
				t.Errorf("detectScript(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFixedToFloat(t *testing.T) {
	tests := []struct {
		in   fixed.Int26_6
		want float32
	}{
		{0, 0},
		{64, 1},
		{96, 1.5},
		{-32, -0.5},
	}
	for _, tt := range tests {
		if got := fixedToFloat(tt.in); got != tt.want {
			t.Errorf("fixedToFloat(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLineMetricsHeight(t *testing.T) {
	m := lineMetrics{ascent: 10, descent: -3, gap: 2}
	if got := m.height(); got != 15 {
		t.Errorf("height() = %v, want 15", got)
	}
}
