package detector

// Detect exposes the environment independent detection for tests.
var Detect = detect
