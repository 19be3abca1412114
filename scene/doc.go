// Package scene loads scenes from external sources and prepares them for
// analysis.
//
// Two loaders are provided: a JSON snapshot format produced by design-tool
// export plugins, and a reader for plain SVG exports. Both produce a
// model.Scene. The package also implements candidate filtering, which
// removes elements that should not participate in grouping (invisible
// elements, elements below the minimum size, elements with degenerate
// bounds, and descendants of containers marked atomic).
package scene
