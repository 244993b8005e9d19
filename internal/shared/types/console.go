package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle
	ProgressWithTotal(total int) ProgressHandle

	CreateTable() TableInterface
	DisplayStageBars(stages []StageCount)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// ProgressHandle é uma interface para atualizar uma barra de progresso.
type ProgressHandle interface {
	Increment()
	Stop()
}

// ProgressFactory cria uma barra de progresso para um total que só é
// conhecido dentro da operação (ex.: o número de objetos listados).
// Um factory nil desliga o relatório de progresso.
type ProgressFactory func(total int) ProgressHandle

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// StageCount representa a contagem de linhas após um estágio do pipeline,
// usado para o gráfico de barras do resumo.
type StageCount struct {
	Stage string `json:"stage"`
	Rows  int    `json:"rows"`
}
