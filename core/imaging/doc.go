// Package imaging decodes raster images from raw bytes. PNG, JPEG and GIF
// are registered.
package imaging
