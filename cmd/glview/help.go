// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The glview command draws a textured quad with user supplied shaders.

Usage:

	glview [-config file] [-v] [-frames n]

The configuration file is TOML and defaults to glview.toml in the current
directory. It names the window size and title, the shader files and their
language (glsl or wgsl), an optional texture image and the values of the
tint and offset uniforms. Relative file names are resolved against the
directory of the configuration file.

Shaders receive the vertex inputs pos (location 0) and uv (location 1) and
may declare the uniforms mvp (mat4), tint (vec3), offset (vec2) and tex
(sampler2D). Uniforms a shader does not declare are ignored.

With hot_reload set, edits to the shader files rebuild the program while
glview runs. A program that fails to build is reported and the previous
one stays in use.

The -v flag enables debug logging. The -frames flag exits after the given
number of frames, for scripted runs.

Press Escape to quit.
`
