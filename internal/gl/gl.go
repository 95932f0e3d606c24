// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ACTIVE_TEXTURE                     = 0x84E0
	ACTIVE_UNIFORMS                    = 0x8B86
	ARRAY_BUFFER                       = 0x8892
	ARRAY_BUFFER_BINDING               = 0x8894
	ATTACHED_SHADERS                   = 0x8B85
	CLAMP_TO_EDGE                      = 0x812f
	COLOR_ATTACHMENT0                  = 0x8ce0
	COLOR_BUFFER_BIT                   = 0x4000
	COLOR_CLEAR_VALUE                  = 0x0C22
	COMPILE_STATUS                     = 0x8b81
	COMPUTE_SHADER                     = 0x91B9
	CURRENT_PROGRAM                    = 0x8B8D
	DELETE_STATUS                      = 0x8B80
	DEPTH_BUFFER_BIT                   = 0x100
	DYNAMIC_DRAW                       = 0x88E8
	ELEMENT_ARRAY_BUFFER               = 0x8893
	ELEMENT_ARRAY_BUFFER_BINDING       = 0x8895
	FALSE                              = 0
	FLOAT                              = 0x1406
	FRAGMENT_SHADER                    = 0x8b30
	FRAMEBUFFER                        = 0x8d40
	FRAMEBUFFER_BINDING                = 0x8ca6
	FRAMEBUFFER_COMPLETE               = 0x8cd5
	GEOMETRY_SHADER                    = 0x8DD9
	INFO_LOG_LENGTH                    = 0x8B84
	INVALID_ENUM                       = 0x0500
	INVALID_FRAMEBUFFER_OPERATION      = 0x0506
	INVALID_OPERATION                  = 0x0502
	INVALID_VALUE                      = 0x0501
	LINEAR                             = 0x2601
	LINES                              = 0x1
	LINE_LOOP                          = 0x2
	LINE_STRIP                         = 0x3
	LINK_STATUS                        = 0x8b82
	MAX_TEXTURE_SIZE                   = 0xd33
	MAX_VERTEX_ATTRIBS                 = 0x8869
	MIRRORED_REPEAT                    = 0x8370
	NEAREST                            = 0x2600
	NO_ERROR                           = 0x0
	OUT_OF_MEMORY                      = 0x0505
	PACK_ALIGNMENT                     = 0x0D05
	POINTS                             = 0x0
	RENDERER                           = 0x1F01
	REPEAT                             = 0x2901
	RGBA                               = 0x1908
	RGBA8                              = 0x8058
	SHADER_TYPE                        = 0x8B4F
	SHORT                              = 0x1402
	STATIC_DRAW                        = 0x88e4
	STREAM_DRAW                        = 0x88E0
	TEXTURE_2D                         = 0xde1
	TEXTURE_BINDING_2D                 = 0x8069
	TEXTURE_MAG_FILTER                 = 0x2800
	TEXTURE_MIN_FILTER                 = 0x2801
	TEXTURE_WRAP_S                     = 0x2802
	TEXTURE_WRAP_T                     = 0x2803
	TEXTURE0                           = 0x84c0
	TRIANGLES                          = 0x4
	TRIANGLE_FAN                       = 0x6
	TRIANGLE_STRIP                     = 0x5
	TRUE                               = 1
	UNPACK_ALIGNMENT                   = 0xcf5
	UNSIGNED_BYTE                      = 0x1401
	UNSIGNED_INT                       = 0x1405
	UNSIGNED_SHORT                     = 0x1403
	VERSION                            = 0x1f02
	VERTEX_ARRAY_BINDING               = 0x85B5
	VERTEX_ATTRIB_ARRAY_BUFFER_BINDING = 0x889F
	VERTEX_ATTRIB_ARRAY_ENABLED        = 0x8622
	VERTEX_ATTRIB_ARRAY_NORMALIZED     = 0x886A
	VERTEX_ATTRIB_ARRAY_POINTER        = 0x8645
	VERTEX_ATTRIB_ARRAY_SIZE           = 0x8623
	VERTEX_ATTRIB_ARRAY_STRIDE         = 0x8624
	VERTEX_ATTRIB_ARRAY_TYPE           = 0x8625
	VERTEX_SHADER                      = 0x8b31
	VIEWPORT                           = 0x0BA2
	ZERO                               = 0x0
)
