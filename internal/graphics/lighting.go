package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// One white directional light fixed in eye space, shining down from above the viewer
var (
	LightDirection = mgl32.Vec3{0, 1, 0}
	AmbientLevel   = float32(0.2)
)

// UseSceneShader binds a scene shader and sets the per-frame camera and light uniforms
func UseSceneShader(s *Shader, view, proj mgl32.Mat4) {
	s.Use()
	s.SetMatrix4("view", view)
	s.SetMatrix4("proj", proj)
	s.SetVector3("lightDir", LightDirection)
	s.SetFloat("ambient", AmbientLevel)
	s.SetBool("lit", true)
}
