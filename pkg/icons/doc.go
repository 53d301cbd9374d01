// Package icons holds the default icon set and loads icon overrides.
//
// An icon set maps an icon name (e.g. "close") to its SVG markup. Overrides
// can be declared inline in the project configuration, read from a
// directory of .svg files, or fetched from an S3 bucket:
//
//	src := icons.NewS3Source(client, "design-assets", "icons/")
//	overrides, err := src.Load(ctx)
//	merged := icons.Merge(icons.Default(), overrides)
package icons
