package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vango-dev/controls/pkg/ui"
	"github.com/vango-dev/controls/pkg/vtest"
)

func TestStyleDefaults(t *testing.T) {
	var (
		v ui.Variant
		c ui.Color
		s ui.Size
	)
	assert.Equal(t, "filled", v.String())
	assert.Equal(t, "primary", c.String())
	assert.Equal(t, "normal", s.String())
}

func TestStyleNames(t *testing.T) {
	var names []string
	for _, v := range ui.Variants {
		names = append(names, v.String())
	}
	assert.ElementsMatch(t, []string{"filled", "flat", "outlined"}, names)

	names = nil
	for _, c := range ui.Colors {
		names = append(names, c.String())
	}
	assert.ElementsMatch(t, []string{"primary", "secondary", "success", "info", "warn", "danger"}, names)

	names = nil
	for _, s := range ui.Sizes {
		names = append(names, s.String())
	}
	assert.ElementsMatch(t, []string{"small", "normal", "big"}, names)
}

func TestIcon(t *testing.T) {
	assert.Equal(t,
		`<i aria-hidden="true" class="vango-icon" data-icon="caret-up"></i>`,
		vtest.RenderToString(ui.Icon(ui.CaretUp)))
}
