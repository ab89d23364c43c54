package backend

import "time"

type BackendConfig struct {
	port        int32
	database    string
	redis       string
	userService *UserServiceConfig
	performance *PerformanceConfig
	artifacts   *ArtifactsConfig
	auth        *AuthConfig
}

func (c *BackendConfig) Port() int32 {
	return c.port
}

// Connection string for database.
func (c *BackendConfig) Database() string {
	return c.database
}

// Address of the redis server.
func (c *BackendConfig) Redis() string {
	return c.redis
}

func (c *BackendConfig) UserService() *UserServiceConfig {
	return c.userService
}

func (c *BackendConfig) Performance() *PerformanceConfig {
	return c.performance
}

func (c *BackendConfig) Artifacts() *ArtifactsConfig {
	return c.artifacts
}

func (c *BackendConfig) Auth() *AuthConfig {
	return c.auth
}

// Configuration for the user directory service.
type UserServiceConfig struct {
	root    string
	timeout time.Duration
}

// Base URL of the user service. endpoints hang under {root}/users .
func (c *UserServiceConfig) Root() string {
	return c.root
}

// Per-lookup deadline. default = 3s
func (c *UserServiceConfig) Timeout() time.Duration {
	return c.timeout
}

// Configuration for the performance report sink.
type PerformanceConfig struct {
	root string
}

func (c *PerformanceConfig) Root() string {
	return c.root
}

// Configuration for stored task artifacts.
type ArtifactsConfig struct {
	dir     string
	baseUrl string
}

// Local directory artifacts are written into.
func (c *ArtifactsConfig) Dir() string {
	return c.dir
}

// Public base URL artifacts are served under.
func (c *ArtifactsConfig) BaseUrl() string {
	return c.baseUrl
}

type AuthConfig struct {
	secret string
}

// HMAC secret bearer tokens are signed with.
func (c *AuthConfig) Secret() string {
	return c.secret
}
