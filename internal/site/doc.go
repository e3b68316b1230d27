// Package site loads the landing page copy. The copy ships embedded as YAML
// and can be replaced at runtime with SITE_CONTENT_FILE.
package site
