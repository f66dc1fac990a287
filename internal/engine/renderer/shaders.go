package renderer

// Toon shading: one directional light, N.L looked up in a gradient ramp.
const toonVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uProjection;
uniform mat4 uView;
uniform mat4 uModel;
uniform mat3 uNormalMatrix;

uniform sampler2D uHeightMap;
uniform bool uHasHeightMap;
uniform float uDisplacement;

out vec3 vNormal;
out vec3 vViewPos;
out vec2 vUV;

void main() {
	vec3 pos = aPos;
	if (uHasHeightMap) {
		pos += aNormal * texture(uHeightMap, aUV).r * uDisplacement;
	}
	vec4 viewPos = uView * uModel * vec4(pos, 1.0);
	vNormal = mat3(uView) * uNormalMatrix * aNormal;
	vViewPos = viewPos.xyz;
	vUV = aUV;
	gl_Position = uProjection * viewPos;
}
`

const toonFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec3 vViewPos;
in vec2 vUV;

uniform vec3 uColor;
uniform vec3 uLightDir;    // view space, pointing toward the light
uniform vec3 uLightColor;  // color * intensity

uniform sampler2D uGradientMap;
uniform sampler2D uColorMap;
uniform sampler2D uAOMap;
uniform sampler2D uNormalMap;
uniform bool uHasNormalMap;

out vec4 FragColor;

const float RECIPROCAL_PI = 0.3183098861837907;

// Tangent frame from screen-space derivatives, no tangent attribute needed
vec3 perturbNormal(vec3 n, vec3 viewPos, vec2 uv) {
	vec3 q0 = dFdx(viewPos);
	vec3 q1 = dFdy(viewPos);
	vec2 st0 = dFdx(uv);
	vec2 st1 = dFdy(uv);
	vec3 q1perp = cross(q1, n);
	vec3 q0perp = cross(n, q0);
	vec3 t = q1perp * st0.x + q0perp * st1.x;
	vec3 b = q1perp * st0.y + q0perp * st1.y;
	float det = max(dot(t, t), dot(b, b));
	float scale = det == 0.0 ? 0.0 : inversesqrt(det);
	vec3 mapN = texture(uNormalMap, uv).xyz * 2.0 - 1.0;
	return normalize(t * (mapN.x * scale) + b * (mapN.y * scale) + n * mapN.z);
}

void main() {
	vec3 n = normalize(vNormal);
	if (!gl_FrontFacing) {
		n = -n;
	}
	if (uHasNormalMap) {
		n = perturbNormal(n, vViewPos, vUV);
	}

	vec3 albedo = pow(uColor, vec3(2.2)) * pow(texture(uColorMap, vUV).rgb, vec3(2.2));
	float dotNL = dot(n, normalize(uLightDir));
	float band = texture(uGradientMap, vec2(dotNL * 0.5 + 0.5, 0.0)).r;
	float ao = texture(uAOMap, vUV).r;

	vec3 linear = albedo * RECIPROCAL_PI * band * uLightColor * ao;
	FragColor = vec4(pow(linear, vec3(1.0 / 2.2)), 1.0);
}
`

// Points: square sprites sized in pixels, shrinking with view depth.
const pointsVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uProjection;
uniform mat4 uView;
uniform float uSize;        // material size * pixel ratio
uniform float uScale;       // logical window height / 2
uniform bool uAttenuation;

void main() {
	vec4 viewPos = uView * vec4(aPos, 1.0);
	gl_PointSize = uSize;
	if (uAttenuation) {
		gl_PointSize *= uScale / -viewPos.z;
	}
	gl_Position = uProjection * viewPos;
}
`

const pointsFragmentShader = `
#version 410 core

uniform vec3 uColor;
uniform float uOpacity;

out vec4 FragColor;

void main() {
	FragColor = vec4(uColor, uOpacity);
}
`
