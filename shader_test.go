package clockface_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/clockface"
)

func TestCompileAndLink(t *testing.T) {
	dev := newFakeDevice()

	prog, err := clockface.CompileAndLink(dev, clockface.VertexShaderSource, clockface.FragmentShaderSource)
	require.NoError(t, err)
	require.NotZero(t, prog.Handle())

	// Attribute slots are bound before linking.
	link := dev.index("LinkProgram")
	assert.Less(t, dev.index("BindAttribLocation 0 a_position"), link)
	assert.Less(t, dev.index("BindAttribLocation 1 a_texCoord"), link)

	// Stage objects are released once linked; the program stays.
	assert.Empty(t, dev.shaders)
	assert.Len(t, dev.programs, 1)

	assert.Equal(t, int32(clockface.PositionSlot), prog.AttributeLocation(clockface.PositionAttrib))
	assert.Equal(t, int32(clockface.TexCoordSlot), prog.AttributeLocation(clockface.TexCoordAttrib))
	assert.Equal(t, int32(7), prog.UniformLocation(clockface.SamplerUniform))

	require.NoError(t, prog.Bind())
	assert.Equal(t, 1, dev.count("UseProgram"))
}

func TestCompileAndLinkFailures(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(d *fakeDevice)
		wantStage clockface.ShaderStage
		wantLink  bool
	}{
		{
			name:      "vertex stage",
			setup:     func(d *fakeDevice) { d.failCompile, d.failStage = true, clockface.StageVertex },
			wantStage: clockface.StageVertex,
		},
		{
			name:      "fragment stage",
			setup:     func(d *fakeDevice) { d.failCompile, d.failStage = true, clockface.StageFragment },
			wantStage: clockface.StageFragment,
		},
		{
			name:     "link",
			setup:    func(d *fakeDevice) { d.failLink = true },
			wantLink: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newFakeDevice()
			tt.setup(dev)

			prog, err := clockface.CompileAndLink(dev, clockface.VertexShaderSource, clockface.FragmentShaderSource)
			require.Error(t, err)
			assert.Nil(t, prog)

			if tt.wantLink {
				var linkErr *clockface.ShaderLinkError
				require.True(t, errors.As(err, &linkErr))
				assert.Equal(t, "unresolved varying", linkErr.Log)
			} else {
				var compileErr *clockface.ShaderCompileError
				require.True(t, errors.As(err, &compileErr))
				assert.Equal(t, tt.wantStage, compileErr.Stage)
				assert.Contains(t, compileErr.Error(), tt.wantStage.String())
				assert.Equal(t, 0, dev.count("CreateProgram"))
			}

			// Nothing created on the way is left behind.
			assert.Empty(t, dev.shaders)
			assert.Empty(t, dev.programs)
		})
	}
}

func TestBindDeletedProgram(t *testing.T) {
	dev := newFakeDevice()
	prog, err := clockface.CompileAndLink(dev, clockface.VertexShaderSource, clockface.FragmentShaderSource)
	require.NoError(t, err)

	prog.Delete()
	assert.Empty(t, dev.programs)
	assert.ErrorIs(t, prog.Bind(), clockface.ErrProgramReleased)
	assert.Equal(t, 0, dev.count("UseProgram"))

	var nilProg *clockface.ShaderProgram
	assert.ErrorIs(t, nilProg.Bind(), clockface.ErrProgramReleased)
}
