package starfield

import (
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/starfield/fx/field"
	"github.com/gekko3d/starfield/fx/layout"
	"github.com/gekko3d/starfield/fx/shaders"
)

// PointsRendererModule draws every galaxy and trail entity. It needs the
// GpuState installed by ClientModule.
type PointsRendererModule struct {
	ClearColor wgpu.Color
}

const pointsRendererName = "points"

// PointsRenderer owns one GPU pass per effect entity.
type PointsRenderer struct {
	passes     map[EntityId]*pointsPass
	clearColor wgpu.Color
}

// bufferWriter is the part of wgpu.Queue the upload path uses.
type bufferWriter interface {
	WriteBuffer(buffer *wgpu.Buffer, bufferOffset uint64, data []byte) error
}

type pointsPass struct {
	id    EffectId
	count uint32
	specs []layout.AttributeSpec

	pipeline   *wgpu.RenderPipeline
	attributes []*wgpu.Buffer // parallel to specs
	uniforms   *wgpu.Buffer
	bindGroup  *wgpu.BindGroup

	scratch []byte
}

func (mod PointsRendererModule) Install(app *App, cmd *Commands) {
	if _, ok := Resource[GpuState](app); !ok {
		panic("PointsRendererModule requires ClientModule to be installed first")
	}
	ensureSingleRenderer(app, pointsRendererName)
	cmd.AddResources(&PointsRenderer{
		passes:     make(map[EntityId]*pointsPass),
		clearColor: mod.ClearColor,
	})
	app.UseSystem(
		System(pointsUploadSystem).
			InStage(PreRender),
	)
	app.UseSystem(
		System(pointsRenderSystem).
			InStage(Render),
	)
	app.UseSystem(
		System(pointsReleaseSystem).
			InStage(PostRender),
	)
}

func pointsUploadSystem(gpuState *GpuState, r *PointsRenderer, cmd *Commands) {
	cam := activeCamera(cmd)
	base := layout.Uniforms{
		View:       cam.View(),
		Projection: cam.Projection(),
		Viewport:   gpuState.viewport(),
	}
	live := make(set[EntityId])

	MakeQuery1[GalaxyComponent](cmd).Map(func(eid EntityId, g *GalaxyComponent) bool {
		u := base
		u.Size, u.Time, u.Spin = g.Uniforms.Size, g.Uniforms.Time, g.Uniforms.Spin
		pass := r.passFor(eid, g.Id, g.Field, shaders.GalaxyWGSL, gpuState)
		pass.upload(gpuState.queue, g.Field, u, cmd.Logger())
		live[eid] = struct{}{}
		return true
	})
	MakeQuery1[TrailComponent](cmd).Map(func(eid EntityId, tr *TrailComponent) bool {
		u := base
		u.Size = tr.Uniforms.Size
		pass := r.passFor(eid, tr.Id, tr.Field, shaders.TrailWGSL, gpuState)
		pass.upload(gpuState.queue, tr.Field, u, cmd.Logger())
		live[eid] = struct{}{}
		return true
	})

	for eid, pass := range r.passes {
		if _, ok := live[eid]; !ok {
			cmd.Logger().Debugf("releasing points pass %s", pass.id)
			pass.release()
			delete(r.passes, eid)
		}
	}
}

func pointsRenderSystem(gpuState *GpuState, r *PointsRenderer, cmd *Commands) {
	nextTexture, err := gpuState.surface.GetCurrentTexture()
	if err != nil {
		cmd.Logger().Warnf("GetCurrentTexture failed: %v", err)
		return
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		cmd.Logger().Warnf("CreateView failed: %v", err)
		return
	}
	defer view.Release()

	encoder, err := gpuState.device.CreateCommandEncoder(nil)
	if err != nil {
		cmd.Logger().Warnf("CreateCommandEncoder failed: %v", err)
		return
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: r.clearColor,
		}},
	})
	for _, eid := range r.drawOrder() {
		r.passes[eid].draw(pass)
	}
	if err := pass.End(); err != nil {
		cmd.Logger().Warnf("points pass End failed: %v", err)
	}

	commands, err := encoder.Finish(nil)
	if err != nil {
		cmd.Logger().Warnf("encoder Finish failed: %v", err)
		return
	}
	defer commands.Release()
	gpuState.queue.Submit(commands)
	gpuState.surface.Present()
}

func pointsReleaseSystem(r *PointsRenderer, cmd *Commands) {
	if !cmd.Exiting() {
		return
	}
	for eid, pass := range r.passes {
		pass.release()
		delete(r.passes, eid)
	}
}

// drawOrder is stable across frames; additive blending makes the order
// invisible but keeps frames reproducible.
func (r *PointsRenderer) drawOrder() []EntityId {
	ids := make([]EntityId, 0, len(r.passes))
	for eid := range r.passes {
		ids = append(ids, eid)
	}
	slices.Sort(ids)
	return ids
}

// passFor returns the pass of eid, creating its buffers on first sight.
// Buffers are sized for f.Count once and never grow.
func (r *PointsRenderer) passFor(eid EntityId, id EffectId, f *field.Field, shaderCode string, gpuState *GpuState) *pointsPass {
	if pass, ok := r.passes[eid]; ok {
		return pass
	}

	label := f.Kind.String() + " " + id.String()
	specs := layout.For(f.Kind)
	pass := &pointsPass{
		id:       id,
		count:    uint32(f.Count),
		specs:    specs,
		pipeline: createPointsPipeline(label, shaderCode, specs, gpuState),
	}
	for _, spec := range specs {
		size := spec.Stride() * uint64(f.Count)
		pass.attributes = append(pass.attributes, createBuffer(
			label+" "+spec.Name(), size, wgpu.BufferUsageVertex|wgpu.BufferUsageCopyDst, gpuState,
		))
	}
	pass.uniforms = createBuffer(label+" uniforms", layout.UniformsSize, wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst, gpuState)
	pass.bindGroup = createUniformBindGroup(label, pass.pipeline, pass.uniforms, gpuState)

	r.passes[eid] = pass
	return pass
}

// upload writes the dirty attributes of f and the uniform block. An
// attribute stays dirty when its write fails so the next frame retries.
func (p *pointsPass) upload(w bufferWriter, f *field.Field, u layout.Uniforms, logger Logger) {
	for i, spec := range p.specs {
		if !f.IsDirty(spec.Attr) {
			continue
		}
		p.scratch = layout.PackFloats(p.scratch, f.Data(spec.Attr))
		if err := w.WriteBuffer(p.attributes[i], 0, p.scratch); err != nil {
			logger.Warnf("%s: writing %s: %v", p.id, spec.Name(), err)
			continue
		}
		f.ClearDirty(spec.Attr)
	}
	if err := w.WriteBuffer(p.uniforms, 0, u.Bytes()); err != nil {
		logger.Warnf("%s: writing uniforms: %v", p.id, err)
	}
}

func (p *pointsPass) draw(pass *wgpu.RenderPassEncoder) {
	pass.SetPipeline(p.pipeline)
	pass.SetBindGroup(0, p.bindGroup, nil)
	for slot, buf := range p.attributes {
		pass.SetVertexBuffer(uint32(slot), buf, 0, buf.GetSize())
	}
	pass.Draw(verticesPerPoint, p.count, 0, 0)
}

func (p *pointsPass) release() {
	if p.bindGroup != nil {
		p.bindGroup.Release()
	}
	if p.uniforms != nil {
		p.uniforms.Release()
	}
	for _, buf := range p.attributes {
		if buf != nil {
			buf.Release()
		}
	}
	if p.pipeline != nil {
		p.pipeline.Release()
	}
}
