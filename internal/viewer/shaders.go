package viewer

import (
	"fmt"
	"os"
	"strings"
)

// DefaultVertexShader places textured vertices with the model, view and
// projection uniforms.
const DefaultVertexShader = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoords;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec2 TexCoords;

void main() {
    TexCoords = aTexCoords;
    gl_Position = projection * view * model * vec4(aPos, 1.0);
}
` + "\x00"

const DefaultFragmentShader = `
#version 410 core
in vec2 TexCoords;
out vec4 FragColor;

uniform sampler2D texture1;

void main() {
    FragColor = texture(texture1, TexCoords);
}
` + "\x00"

// LoadShaderSources returns the vertex and fragment sources, NUL-terminated
// for the GL bindings. An empty path selects the built-in source.
func LoadShaderSources(vertexPath, fragmentPath string) (vertex, fragment string, err error) {
	vertex, err = loadShaderSource(vertexPath, DefaultVertexShader)
	if err != nil {
		return "", "", err
	}
	fragment, err = loadShaderSource(fragmentPath, DefaultFragmentShader)
	if err != nil {
		return "", "", err
	}
	return vertex, fragment, nil
}

func loadShaderSource(path, fallback string) (string, error) {
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read shader %s: %w", path, err)
	}
	src := strings.TrimRight(string(data), "\x00")
	if strings.TrimSpace(src) == "" {
		return "", fmt.Errorf("shader %s is empty", path)
	}
	return src + "\x00", nil
}
