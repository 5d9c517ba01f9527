package app

import (
	"github.com/philipparndt/gocaustics/pkg/analysis"
	"github.com/philipparndt/gocaustics/pkg/geometry"
	"github.com/philipparndt/gocaustics/pkg/obj"
	"github.com/philipparndt/gocaustics/pkg/optics"
	"github.com/philipparndt/gocaustics/pkg/watcher"
)

// SceneState holds the loaded mesh, the refracted field and the current
// projection. The receiver-plane distance is the only mutable parameter;
// changing it re-runs the projection, never the refraction.
type SceneState struct {
	mesh     *obj.Mesh
	field    *optics.Field
	hits     []optics.Hit
	stats    *analysis.PatternResult
	distance float64
	eta      float64
}

// ViewSettings holds display settings
type ViewSettings struct {
	autoFit bool          // refit the window to the pattern after each change
	window  geometry.Rect // receiver-plane region mapped to the screen
	showHUD bool
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	sourceFile  string
	meshWatcher *watcher.MeshWatcher
	needsReload bool
	isLoading   bool
	loadedMesh  *obj.Mesh // mesh loaded in background, applied on main thread
}
