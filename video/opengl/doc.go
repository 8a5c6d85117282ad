// Package opengl provides OpenGL contexts for SDL windows and a pinned render loop that drives them.
package opengl

import (
	"github.com/ignite-laboratories/centurion/video"
	"github.com/ignite-laboratories/core"
)

var ModuleName = "opengl"

func init() {
	video.Report()
	core.SubmoduleReport(video.ModuleName, ModuleName)
}

func Report() {}
