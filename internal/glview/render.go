package glview

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/jhbabon/johnny-eight/chip8"
)

var (
	vertexShaderGlsl = `
	  #version 410 core
	  in vec2 pos;
	  void main() {
	   gl_Position = vec4(pos, 0.0, 1.0);
	  }`
	fragmentShaderGlsl = `
	  #version 410 core
	  out vec4 color;
	  void main() {
	    color = vec4(0.85, 0.85, 0.85, 1.0);
	  }`
)

// renderer draws lit display cells as quads between a fixed grid of
// vertices.
type renderer struct {
	vao, vbo, ebo uint32
	program       uint32
	indices       []uint32
}

// fillIndices writes the vertex indices of two triangles for every lit cell
// of s and returns how many indices were written.
func fillIndices(s *chip8.Screen, indices []uint32) int {
	h := chip8.DisplayHeight + 1
	n := 0
	for x := 0; x < chip8.DisplayWidth; x++ {
		for y := 0; y < chip8.DisplayHeight; y++ {
			if s.At(x, y) == 0 {
				continue
			}
			// Corners of quad
			q1 := uint32(x*h + y)
			q2 := uint32(x*h + y + 1)
			q3 := uint32((x+1)*h + y)
			q4 := uint32((x+1)*h + y + 1)
			indices[n+0] = q1
			indices[n+1] = q2
			indices[n+2] = q3
			indices[n+3] = q2
			indices[n+4] = q3
			indices[n+5] = q4
			n += 6
		}
	}
	return n
}

// gridVertices returns the clip space coordinates of the cell corners.
//
// The vertices are numbered starting from the top left and going down,
// proceeding right after the last row is reached. The vertex at position
// (x,y) is numbered 33*x+y:
//   - (0,0) is vertex 0
//   - (0,1) is vertex 1
//   - (1,0) is vertex 33
//   - etc.
//
//	     x  0 1     ...      64
//	     --->
//	 y |
//	   |  +---------------------+
//	 0 v  | . . . . . . . . . . |
//	 1    | . . . . . . . . . . |
//	...   | . . . . . . . . . . |
//	32    | . . . . . . . . . . |
//	      +---------------------+
func gridVertices() []float32 {
	w, h := chip8.DisplayWidth+1, chip8.DisplayHeight+1
	buf := make([]float32, w*h*2) // 2 coordinates for each vertex
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			i := 2 * (x*h + y)
			buf[i] = -1 + float32(x)/float32(chip8.DisplayWidth/2)
			buf[i+1] = 1 - float32(y)/float32(chip8.DisplayHeight/2)
		}
	}
	return buf
}

func checkShaderError(shader uint32) error {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", 1+int(length))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
		return errors.New(log)
	}
	return nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(source)
	defer free()
	gl.ShaderSource(shader, 1, csrc, nil)
	gl.CompileShader(shader)

	if err := checkShaderError(shader); err != nil {
		gl.DeleteShader(shader)
		return 0, err
	}
	return shader, nil
}

// newRenderer sets up buffers and shaders. The GL context must be current.
func newRenderer() (*renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	r := &renderer{
		// one quad per cell, each quad needs 6 indices
		indices: make([]uint32, chip8.DisplayPixels*6),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	grid := gridVertices()
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(grid)*4, gl.Ptr(grid), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(
		gl.ELEMENT_ARRAY_BUFFER, len(r.indices)*4, gl.Ptr(r.indices), gl.DYNAMIC_DRAW)

	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexShaderGlsl)
	if err != nil {
		return nil, fmt.Errorf("vertex shader error: %w", err)
	}
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentShaderGlsl)
	if err != nil {
		return nil, fmt.Errorf("fragment shader error: %w", err)
	}

	r.program = gl.CreateProgram()
	gl.AttachShader(r.program, vertexShader)
	gl.AttachShader(r.program, fragmentShader)
	gl.BindFragDataLocation(r.program, 0, gl.Str("color\x00"))
	gl.LinkProgram(r.program)
	gl.UseProgram(r.program)

	var status int32
	gl.GetProgramiv(r.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(r.program, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", 1+int(length))
		gl.GetProgramInfoLog(r.program, length, nil, gl.Str(log))
		return nil, fmt.Errorf("program link error: %s", log)
	}

	gl.EnableVertexAttribArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		return nil, fmt.Errorf("GL error: 0x%x", glErr)
	}

	gl.ClearColor(.1, .1, .1, 0)
	return r, nil
}

func (r *renderer) draw(s *chip8.Screen) {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	n := fillIndices(s, r.indices)
	if n == 0 {
		return
	}
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, n*4, gl.Ptr(r.indices))
	gl.DrawElements(gl.TRIANGLES, int32(n), gl.UNSIGNED_INT, gl.PtrOffset(0))
}
