// Package effects defines the catalog of video/audio effects and the
// fragment builders that translate an effect selection into filtergraph
// snippets.
//
// Each builder produces a Fragment whose filter expressions use local
// placeholders: {0v}/{0a} always refer to the pipeline's primary video and
// audio streams, while {1v}/{1a}, {2v}/{2a}, ... refer to the fragment's own
// extra inputs by 1-based position. The plan compiler rewrites those
// placeholders into global ffmpeg input indices, so builders never need to
// know where their inputs land in the final command line.
//
// Builders never fail: when a required asset pool is empty and no override
// path was supplied they return the passthrough fragment instead.
package effects
