package vido

// Version of the vido application and its packages.
const Version = "0.1.0"
