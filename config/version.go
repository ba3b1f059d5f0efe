package config

var Version = "0.1.0"
