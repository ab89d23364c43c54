package backend

import "time"

type Marshalled[S any] interface {
	trySeal(string) S
}

// seal marshalled object.
//
// this function CAN CAUSE PANIC if misconfiguration is found.
//
// All types named `pkg/configs/backend.XxxMarshall` are `Marshalled[*Xxx]` .
func TrySeal[S any](conf Marshalled[S]) S {
	return conf.trySeal("(root)")
}

type BackendConfigMarshall struct {
	Port        int32                     `yaml:"port"`
	Database    string                    `yaml:"database"`
	Redis       string                    `yaml:"redis"`
	UserService *UserServiceConfigMarshall `yaml:"userService"`
	Performance *PerformanceConfigMarshall `yaml:"performance"`
	Artifacts   *ArtifactsConfigMarshall   `yaml:"artifacts"`
	Auth        *AuthConfigMarshall        `yaml:"auth"`
}

var _ Marshalled[*BackendConfig] = &BackendConfigMarshall{}

func (b *BackendConfigMarshall) trySeal(path string) *BackendConfig {
	return &BackendConfig{
		port:        required(b.Port, path+".port"),
		database:    required(b.Database, path+".database"),
		redis:       required(b.Redis, path+".redis"),
		userService: nonnil(b.UserService, path+".userService").trySeal(path + ".userService"),
		performance: nonnil(b.Performance, path+".performance").trySeal(path + ".performance"),
		artifacts:   nonnil(b.Artifacts, path+".artifacts").trySeal(path + ".artifacts"),
		auth:        nonnil(b.Auth, path+".auth").trySeal(path + ".auth"),
	}
}

type UserServiceConfigMarshall struct {
	Root    string `yaml:"root"`
	Timeout string `yaml:"timeout,omitempty"`
}

func (m *UserServiceConfigMarshall) trySeal(path string) *UserServiceConfig {
	timeout := 3 * time.Second
	if m.Timeout != "" {
		d, err := time.ParseDuration(m.Timeout)
		if err != nil {
			panic(path + ".timeout is not a duration: " + m.Timeout)
		}
		timeout = d
	}
	return &UserServiceConfig{
		root:    required(m.Root, path+".root"),
		timeout: timeout,
	}
}

type PerformanceConfigMarshall struct {
	Root string `yaml:"root"`
}

func (m *PerformanceConfigMarshall) trySeal(path string) *PerformanceConfig {
	return &PerformanceConfig{
		root: required(m.Root, path+".root"),
	}
}

type ArtifactsConfigMarshall struct {
	Dir     string `yaml:"dir"`
	BaseUrl string `yaml:"baseUrl"`
}

func (m *ArtifactsConfigMarshall) trySeal(path string) *ArtifactsConfig {
	return &ArtifactsConfig{
		dir:     required(m.Dir, path+".dir"),
		baseUrl: required(m.BaseUrl, path+".baseUrl"),
	}
}

type AuthConfigMarshall struct {
	Secret string `yaml:"secret"`
}

func (m *AuthConfigMarshall) trySeal(path string) *AuthConfig {
	return &AuthConfig{
		secret: required(m.Secret, path+".secret"),
	}
}

func nonnil[T any](v *T, path string) *T {
	if v == nil {
		panic(path + " is required")
	}
	return v
}

func required[T comparable](v T, path string) T {
	if v == *new(T) {
		panic(path + " is required")
	}
	return v
}
