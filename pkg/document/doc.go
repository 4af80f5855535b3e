// Package document provides YAML reading and writing for canvas diagrams.
//
// # Format
//
// A document is a YAML file in one of two shapes. The hierarchical form
// spells out the full containment tree:
//
//	title: Order flow
//	networks:
//	  - id: backend
//	    factories:
//	      - id: ingest
//	        machines:
//	          - id: workers
//	            nodes:
//	              - id: parse
//	                type: process
//	                outputs: [validate]
//	              - id: validate
//	                type: decision
//
// The flat form lists nodes at the top level with no containers at all:
//
//	nodes:
//	  - id: parse
//	    outputs: [validate]
//	  - id: validate
//
// Flat documents are wrapped into a single generated machine, factory and
// network on read, so every canvas handed to callers has the full four-tier
// shape. Nodes without an id receive a generated one.
//
// # Node Fields
//
// Required: none. A node with no fields at all is valid and gets a generated
// id and default size. Recognized fields:
//
//   - id, type, label, content
//   - x, y, width, height: numeric, written back verbatim on export
//   - inputs, outputs: lists of node ids forming the connection layer;
//     references to unknown ids are kept, not rejected
//   - style: per-node color overrides
//
// # Round Trips
//
// [Write] emits the same shape [Read] accepts, positions included, so a
// document can be read, organized and written repeatedly without loss.
// A flat document becomes hierarchical after its first round trip.
package document
