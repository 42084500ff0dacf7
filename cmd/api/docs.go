package main

// @title Powdercast API
// @version 1.0.0
// @description Mock elevation-stratified weather forecasts for ski resorts
// @contact.name API Support
// @BasePath /
