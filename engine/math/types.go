package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector. Also used for RGBA colours.
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion Vec4

/** @brief a 3x3 matrix, typically used for normal matrices. Column-major. */
type Mat3 struct {
	Data [9]float32
}

/**
 * @brief a 4x4 matrix, typically used to represent object transformations.
 * Elements 12, 13 and 14 hold the translation, which is the layout OpenGL
 * expects for a column-major upload without transposition.
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief Represents the extents of a 2d object.
 */
type Extents2D struct {
	/** @brief The minimum extents of the object. */
	Min Vec2
	/** @brief The maximum extents of the object. */
	Max Vec2
}
