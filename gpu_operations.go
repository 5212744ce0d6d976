package starfield

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/gekko3d/starfield/fx/layout"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

type GpuState struct {
	surface       *wgpu.Surface
	adapter       *wgpu.Adapter
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceConfig *wgpu.SurfaceConfiguration
}

// verticesPerPoint is the quad each point instance expands to.
const verticesPerPoint = 6

func createWindowState(windowWidth int, windowHeight int, windowTitle string) *WindowState {
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // Important: tell GLFW we don't want OpenGL
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		panic(err)
	}

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}
}

// pixelRatio is the horizontal content scale, 1 on a standard display.
func (s *WindowState) pixelRatio() float32 {
	x, _ := s.windowGlfw.GetContentScale()
	if x <= 0 {
		return 1
	}
	return x
}

func (s *WindowState) destroy() {
	s.windowGlfw.Destroy()
	glfw.Terminate()
}

func createGpuState(s *WindowState) *GpuState {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()
	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(s.windowGlfw))
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		panic(err)
	}
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Starfield Device",
	})
	if err != nil {
		panic(err)
	}
	queue := device.GetQueue()

	width, height := s.windowGlfw.GetFramebufferSize()
	caps := surface.GetCapabilities(adapter)
	surfaceConfig := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo, // vsync
		AlphaMode:   caps.AlphaModes[0],
	}

	surface.Configure(adapter, device, &surfaceConfig)

	return &GpuState{
		surface:       surface,
		adapter:       adapter,
		device:        device,
		queue:         queue,
		surfaceConfig: &surfaceConfig,
	}
}

// resize reconfigures the surface for a new framebuffer size. It reports
// whether anything changed.
func (g *GpuState) resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if g.surfaceConfig.Width == uint32(width) && g.surfaceConfig.Height == uint32(height) {
		return false
	}
	g.surfaceConfig.Width = uint32(width)
	g.surfaceConfig.Height = uint32(height)
	g.surface.Configure(g.adapter, g.device, g.surfaceConfig)
	return true
}

func (g *GpuState) viewport() [2]float32 {
	return [2]float32{float32(g.surfaceConfig.Width), float32(g.surfaceConfig.Height)}
}

func (g *GpuState) release() {
	g.device.Release()
	g.adapter.Release()
	g.surface.Release()
}

// createPointsPipeline builds the additive, depth-less pipeline that draws
// one camera-facing quad per point. Each attribute lives in its own
// instance-rate buffer, bound in specs order.
func createPointsPipeline(name string, shaderCode string, specs []layout.AttributeSpec, gpuState *GpuState) *wgpu.RenderPipeline {
	shader, err := gpuState.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaderCode},
	})
	if err != nil {
		panic(err)
	}
	defer shader.Release()

	pipeline, err := gpuState.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: name,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    createVertexBufferLayouts(specs),
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    gpuState.surfaceConfig.Format,
					Blend:     &additiveBlend,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		panic(err)
	}
	return pipeline
}

var additiveBlend = wgpu.BlendState{
	Color: wgpu.BlendComponent{
		Operation: wgpu.BlendOperationAdd,
		SrcFactor: wgpu.BlendFactorSrcAlpha,
		DstFactor: wgpu.BlendFactorOne,
	},
	Alpha: wgpu.BlendComponent{
		Operation: wgpu.BlendOperationAdd,
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorOne,
	},
}

func createVertexBufferLayouts(specs []layout.AttributeSpec) []wgpu.VertexBufferLayout {
	layouts := make([]wgpu.VertexBufferLayout, 0, len(specs))
	for _, spec := range specs {
		layouts = append(layouts, wgpu.VertexBufferLayout{
			ArrayStride: spec.Stride(),
			StepMode:    wgpu.VertexStepModeInstance,
			Attributes: []wgpu.VertexAttribute{
				{
					Format:         vertexFormat(spec.Components()),
					Offset:         0,
					ShaderLocation: spec.Location,
				},
			},
		})
	}
	return layouts
}

func vertexFormat(components int) wgpu.VertexFormat {
	switch components {
	case 1:
		return wgpu.VertexFormatFloat32
	case 2:
		return wgpu.VertexFormatFloat32x2
	case 3:
		return wgpu.VertexFormatFloat32x3
	case 4:
		return wgpu.VertexFormatFloat32x4
	}
	panic(fmt.Sprintf("no float32 vertex format with %d components", components))
}

func createBuffer(label string, size uint64, usage wgpu.BufferUsage, gpuState *GpuState) *wgpu.Buffer {
	buffer, err := gpuState.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: usage,
	})
	if err != nil {
		panic(err)
	}
	return buffer
}

func createUniformBindGroup(label string, pipeline *wgpu.RenderPipeline, uniforms *wgpu.Buffer, gpuState *GpuState) *wgpu.BindGroup {
	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	defer bindGroupLayout.Release()

	bindGroup, err := gpuState.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  label,
		Layout: bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  uniforms,
				Size:    layout.UniformsSize,
			},
		},
	})
	if err != nil {
		panic(err)
	}
	return bindGroup
}
