// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"
)

// NewShaderFromWGSL translates the WGSL entry point named entryPoint to
// the GLSL dialect of the context and compiles it. An empty entryPoint
// selects the first entry point of the stage. Translation failures are
// reported as *TranslateError; the driver never sees such sources.
func (c *Context) NewShaderFromWGSL(stage ShaderStage, src, entryPoint string) (*Shader, error) {
	out, err := translateWGSL(src, stage, entryPoint, c.glver, c.gles)
	if err != nil {
		return nil, err
	}
	c.logger().Debug("gpu: wgsl translated", "stage", stage.String(), "entry", entryPoint, "bytes", len(out))
	return c.NewShader(stage, out)
}

func translateWGSL(src string, stage ShaderStage, entryPoint string, glver [2]int, gles bool) (string, error) {
	fail := func(err error) (string, error) {
		return "", &TranslateError{Stage: stage, Err: err}
	}
	want, ok := irStage(stage)
	if !ok {
		return fail(fmt.Errorf("no WGSL stage for %s shaders", stage))
	}
	ast, err := naga.Parse(src)
	if err != nil {
		return fail(err)
	}
	mod, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return fail(err)
	}
	name, err := pickEntryPoint(mod, want, entryPoint)
	if err != nil {
		return fail(err)
	}
	opts := glsl.Options{
		LangVersion: glslVersion(glver, gles),
		EntryPoint:  name,
	}
	if stage == StageVertex {
		opts.WriterFlags |= glsl.WriterFlagAdjustCoordinateSpace
	}
	if gles {
		opts.ForceHighPrecision = true
	}
	out, _, err := glsl.Compile(mod, opts)
	if err != nil {
		return fail(err)
	}
	return out, nil
}

func irStage(s ShaderStage) (ir.ShaderStage, bool) {
	switch s {
	case StageVertex:
		return ir.StageVertex, true
	case StageFragment:
		return ir.StageFragment, true
	case StageCompute:
		return ir.StageCompute, true
	default:
		return 0, false
	}
}

// pickEntryPoint resolves name, or the first entry point of stage when
// name is empty.
func pickEntryPoint(mod *ir.Module, stage ir.ShaderStage, name string) (string, error) {
	for _, ep := range mod.EntryPoints {
		if name != "" && ep.Name != name {
			continue
		}
		if ep.Stage != stage {
			if name == "" {
				continue
			}
			return "", fmt.Errorf("entry point %q has the wrong stage", name)
		}
		return ep.Name, nil
	}
	if name == "" {
		return "", fmt.Errorf("no entry point for the stage")
	}
	return "", fmt.Errorf("no entry point %q", name)
}

func glslVersion(glver [2]int, gles bool) glsl.Version {
	atLeast := func(major, minor int) bool {
		return glver[0] > major || glver[0] == major && glver[1] >= minor
	}
	if gles {
		if atLeast(3, 1) {
			return glsl.VersionES310
		}
		return glsl.VersionES300
	}
	if atLeast(4, 3) {
		return glsl.Version430
	}
	return glsl.Version330
}
