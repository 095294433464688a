// Package layoutfile reads layout descriptions: a named root view, nested
// subviews keyed by view id, and reusable templates.
//
//	name: profile
//	root:
//	  constraints:
//	    edges: "@super"
//	  views:
//	    "!avatar:ImageView":
//	      z-index: 1
//	      constraints:
//	        top left: "@super <16"
//	        size: ">64"
//	      properties:
//	        cornerRadius: "32"
//	templates:
//	  card:
//	    constraints:
//	      height: "p750 >120"
//
// A view id is the view name, optionally prefixed with "!" for a view the
// layout creates and suffixed with ":Class" for the class to create.
// Constraint values are shorthand strings, verbose mappings, or lists of
// either. JSON files are read as YAML.
package layoutfile
