package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 576

	// Frame loop
	FadeAlpha      = 0.15
	LaunchInterval = 30 // frames between shell launches
	TrailLength    = 10

	// Shells
	ShellGravity   = 0.15
	LaunchMarginX  = 0.1 // shells launch within the central 80% of the width
	TargetTopRatio = 0.1
	TargetLowRatio = 0.5

	// Bursts
	BurstMin        = 80
	BurstMax        = 120
	SparkleCount    = 20
	ParticleGravity = 0.05
	DecayMin        = 0.01
	DecayMax        = 0.025
	BurstSpeedMin   = 2.0
	BurstSpeedMax   = 7.0
	SparkleSpeedMin = 4.0
	SparkleSpeedMax = 10.0

	HoldDuration = 4 * time.Second

	SampleRate = 44100
)
