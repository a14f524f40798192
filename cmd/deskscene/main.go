package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"desk-scene/core"
	"desk-scene/internal/opengl"
	sceneio "desk-scene/io"
	"desk-scene/render"
	"desk-scene/scene"
)

var (
	sceneFile = flag.String("scene", "", "load a .dscene file instead of the built-in desk scene")
	saveFile  = flag.String("save", "", "write the scene definition to a .dscene file and exit")
	propFile  = flag.String("prop", "", "optional .gltf/.glb mesh drawn next to the desk")
)

func main() {
	flag.Parse()

	def := scene.DeskScene()
	if *sceneFile != "" {
		loaded, err := sceneio.LoadScene(*sceneFile)
		if err != nil {
			log.Fatalf("load scene: %v", err)
		}
		def = loaded
	}

	if *saveFile != "" {
		if err := sceneio.SaveScene(*saveFile, def); err != nil {
			log.Fatalf("save scene: %v", err)
		}
		fmt.Printf("Wrote %s\n", *saveFile)
		return
	}

	if err := run(def); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(def *scene.Def) error {
	window, err := core.NewWindow(core.DefaultWindowConfig())
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := opengl.Init(); err != nil {
		return err
	}

	program, err := opengl.NewProgram(render.VertexShaderSource, render.FragmentShaderSource)
	if err != nil {
		return fmt.Errorf("shader compile: %w", err)
	}
	defer program.Destroy()
	program.Use()

	meshes := opengl.NewShapeMeshes()
	defer meshes.Destroy()

	mgr := render.NewManager(program, meshes, opengl.TextureUnits{})
	defer opengl.ReleaseTextures(mgr.Textures())

	if err := mgr.PrepareScene(def); err != nil {
		return err
	}

	var prop *opengl.MeshBuffers
	if *propFile != "" {
		mesh, err := scene.LoadGLTFMesh(*propFile)
		if err != nil {
			return err
		}
		prop, err = opengl.UploadMesh(mesh)
		if err != nil {
			return err
		}
		defer opengl.ReleaseBuffers(prop)
	}

	eye := mgl32.Vec3{0, 7, 16}
	center := mgl32.Vec3{0, 2.5, 0}
	up := mgl32.Vec3{0, 1, 0}

	for !window.ShouldClose() {
		if window.IsKeyPressed(core.KeyEscape) {
			break
		}

		fbWidth, fbHeight := window.GetFramebufferSize()
		opengl.SetViewport(fbWidth, fbHeight)
		opengl.Clear(0.12, 0.12, 0.14, 1)

		program.Use()
		aspect := float32(fbWidth) / float32(fbHeight)
		program.SetMat4("view", mgl32.LookAtV(eye, center, up))
		program.SetMat4("projection", mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 100))
		program.SetVec3("viewPos", eye)

		if err := mgr.RenderScene(def); err != nil {
			return err
		}

		if prop != nil {
			mgr.SetTransformations(mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{-3, 0, 3})
			mgr.SetShaderColor(0.8, 0.8, 0.8, 1)
			mgr.SetTextureUVScale(1, 1)
			opengl.DrawBuffers(prop)
		}

		window.SwapBuffers()
		window.PollEvents()
	}
	return nil
}
