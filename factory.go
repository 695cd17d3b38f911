package depot

type factory struct{}

var Factory factory

func (f factory) NewWorld() *World {
	return newWorld()
}

func (f factory) NewScene() *Scene {
	return newScene()
}

func (f factory) NewCommandBuffer() *CommandBuffer {
	return newCommandBuffer()
}

func (f factory) NewExecutor() *Executor {
	return newExecutor()
}
