package render

// VertexShaderSource transforms vertices into clip space and forwards
// world-space position, normal, and tiled texture coordinates to the
// fragment stage.
const VertexShaderSource = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform vec2 UVscale;

out vec3 FragPos;
out vec3 Normal;
out vec2 TexCoord;

void main() {
    vec4 worldPos = model * vec4(aPos, 1.0);
    FragPos = worldPos.xyz;
    Normal = mat3(transpose(inverse(model))) * aNormal;
    TexCoord = aTexCoord * UVscale;
    gl_Position = projection * view * worldPos;
}
` + "\x00"

// FragmentShaderSource shades fragments with Phong lighting from one
// directional light, a fixed array of point lights, and one spot light.
// Each light carries a bActive flag; inactive lights contribute nothing.
// The base color is either objectColor or a sample from objectTexture,
// selected by bUseTexture. With bUseLighting off the base color passes
// through unlit.
const FragmentShaderSource = `#version 410 core
in vec3 FragPos;
in vec3 Normal;
in vec2 TexCoord;

out vec4 FragColor;

struct Material {
    vec3 diffuseColor;
    vec3 specularColor;
    float shininess;
};

struct DirectionalLight {
    vec3 direction;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};

struct PointLight {
    vec3 position;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};

struct SpotLight {
    vec3 position;
    vec3 direction;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    float innerCutoff;
    float outerCutoff;
    bool bActive;
};

#define NR_POINT_LIGHTS 5

uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec3 viewPos;
uniform Material material;
uniform DirectionalLight directionalLight;
uniform PointLight pointLights[NR_POINT_LIGHTS];
uniform SpotLight spotLight;

vec3 shade(vec3 lightDir, vec3 ambient, vec3 diffuse, vec3 specular,
           vec3 normal, vec3 viewDir, vec3 base) {
    float diff = max(dot(normal, lightDir), 0.0);
    vec3 reflectDir = reflect(-lightDir, normal);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
    return ambient * base
         + diffuse * diff * material.diffuseColor * base
         + specular * spec * material.specularColor;
}

void main() {
    vec4 base = bUseTexture ? texture(objectTexture, TexCoord) : objectColor;

    if (!bUseLighting) {
        FragColor = base;
        return;
    }

    vec3 normal = normalize(Normal);
    vec3 viewDir = normalize(viewPos - FragPos);
    vec3 result = vec3(0.0);

    if (directionalLight.bActive) {
        result += shade(normalize(-directionalLight.direction),
                        directionalLight.ambient,
                        directionalLight.diffuse,
                        directionalLight.specular,
                        normal, viewDir, base.rgb);
    }

    for (int i = 0; i < NR_POINT_LIGHTS; i++) {
        if (!pointLights[i].bActive) {
            continue;
        }
        result += shade(normalize(pointLights[i].position - FragPos),
                        pointLights[i].ambient,
                        pointLights[i].diffuse,
                        pointLights[i].specular,
                        normal, viewDir, base.rgb);
    }

    if (spotLight.bActive) {
        vec3 lightDir = normalize(spotLight.position - FragPos);
        float theta = dot(lightDir, normalize(-spotLight.direction));
        float epsilon = spotLight.innerCutoff - spotLight.outerCutoff;
        float intensity = clamp((theta - spotLight.outerCutoff) / epsilon, 0.0, 1.0);
        result += intensity * shade(lightDir,
                                    spotLight.ambient,
                                    spotLight.diffuse,
                                    spotLight.specular,
                                    normal, viewDir, base.rgb);
    }

    FragColor = vec4(result, base.a);
}
` + "\x00"
