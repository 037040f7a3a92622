// Package gems renders the puzzle pieces and slot markers. Meshes and
// materials are cached per shape and created lazily on first draw, so GPU
// resources are allocated after the window/OpenGL context exists.
package gems

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gem-puzzle/internal/board"
)

// Mesh sizing: pieces fit inside one 1.2-unit slot cell with a visible gap.
const (
	gemRadius    = 0.42
	gemHeight    = 0.84
	sphereRings  = 16
	sphereSlices = 16
	prismSlices  = 3 // 3-slice cylinder = triangular prism
	markerRadius = 0.5
	markerHeight = 0.05
	markerSlices = 24
	// markerLift keeps marker bases from z-fighting the board slab top.
	markerLift   = 0.005
)

// cached holds mesh and material for one shape key. Created lazily on first
// draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
	// centerOffset recenters meshes whose raylib origin is not their center
	// (cylinders have their base at Y=0).
	centerOffset float32
}

// Registry maps gem shapes (plus the slot marker) to mesh+material.
type Registry struct {
	cache    map[string]cached
	viewPos  [3]float32 // camera position, set each frame for specular
	lightDir [3]float32 // direction to light (normalized), set each frame
}

// NewRegistry returns an empty registry. Meshes are created on first use.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[string]cached),
		lightDir: [3]float32{0.5, 1, 0.5}, // default: from above-right
	}
}

// SetView sets camera position and direction-to-light for this frame. Call
// once per frame before drawing so the lit shader shades correctly.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

// pieceColors maps piece colors to render tints.
var pieceColors = map[board.Color]rl.Color{
	board.Orange: rl.NewColor(235, 140, 52, 255),
	board.Yellow: rl.NewColor(238, 220, 70, 255),
	board.Green:  rl.NewColor(80, 200, 110, 255),
	board.Blue:   rl.NewColor(70, 130, 230, 255),
	board.Red:    rl.NewColor(225, 60, 70, 255),
}

// Slot marker tints: neutral when idle, green for a free hover target, red
// for an occupied one.
var (
	MarkerNeutral  = rl.NewColor(120, 120, 130, 255)
	MarkerFree     = rl.NewColor(70, 210, 90, 255)
	MarkerOccupied = rl.NewColor(215, 70, 70, 255)
)

// ensure creates the mesh and material for a shape key if not yet cached.
func (r *Registry) ensure(key string) {
	if _, ok := r.cache[key]; ok {
		return
	}
	var c cached
	switch key {
	case string(board.Round):
		c.mesh = rl.GenMeshSphere(gemRadius, sphereRings, sphereSlices)
	case string(board.Triangular):
		c.mesh = rl.GenMeshCylinder(gemRadius, gemHeight, prismSlices)
		c.centerOffset = -gemHeight / 2
	case string(board.Square):
		c.mesh = rl.GenMeshCube(gemHeight, gemHeight, gemHeight)
	case "marker":
		c.mesh = rl.GenMeshCylinder(markerRadius, markerHeight, markerSlices)
	default:
		return
	}
	c.mtl = rl.LoadMaterialDefault()
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		c.mtl.Shader = shader
	}
	r.cache[key] = c
}

// DrawPiece draws one piece at its current position, tinted by its color.
// Must be called between BeginMode3D and EndMode3D; SetView must have been
// called this frame.
func (r *Registry) DrawPiece(p board.Piece) {
	key := string(p.Shape)
	r.ensure(key)
	tint, ok := pieceColors[p.Color]
	if !ok {
		tint = rl.White
	}
	r.draw(key, [3]float32{p.Position.X, p.Position.Y + gemRadius, p.Position.Z}, tint)
}

// DrawMarker draws a slot marker disc at the slot position with the given
// tint. Same calling rules as DrawPiece.
func (r *Registry) DrawMarker(s board.Slot, tint rl.Color) {
	r.ensure("marker")
	r.draw("marker", [3]float32{s.Position.X, s.Position.Y + markerLift, s.Position.Z}, tint)
}

// draw renders a cached mesh at position with the material tinted.
func (r *Registry) draw(key string, position [3]float32, tint rl.Color) {
	c, ok := r.cache[key]
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	r.setLitShaderUniforms(c.mtl.Shader)
	// centerOffset folds the model-space recentering into the translation
	// (meshes are never scaled or rotated here).
	transform := rl.MatrixTranslate(position[0], position[1]+c.centerOffset, position[2])
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

// loadLitShader returns a shader doing directional light + ambient + a small
// specular term. Same vertex attributes as raylib meshes.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  vec3 specular = vec3(spec) * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// defaultAmbient keeps shadowed faces from going pure black.
var defaultAmbient = [4]float32{0.22, 0.22, 0.26, 1.0}

const (
	defaultLightIntensity   = float32(0.8)
	defaultSpecularPower    = float32(48.0)
	defaultSpecularStrength = float32(0.4)
)

// setLitShaderUniforms sets per-frame uniforms on the given shader (cgo-safe:
// local arrays).
func (r *Registry) setLitShaderUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	amb := defaultAmbient
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
}
