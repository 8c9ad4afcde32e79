package catalog

import (
	"github.com/cristianoliveira/noshow/internal/token"
)

const (
	actionCancel = "Cancelar agendamento"

	maskRescheduleInformed   = "Não foi possível realizar o atendimento devido [DESCREVA O PROBLEMA]. Cliente [NOME] foi informado sobre a necessidade de reagendamento."
	maskRescheduleAtDateTime = "Não foi possível concluir o atendimento devido [DESCREVA O PROBLEMA]. Cliente [NOME] às [DATA/HORA] foi informado sobre a necessidade de reagendamento."
	maskMissingEquipment     = "Atendimento não realizado por falta de [DESCREVA SITUAÇÃO]. Cliente [NOME] informado em [DATA/HORA]."
	maskSchedulingError      = "OS agendada apresentou erro de [TIPO] e foi identificado através de [EXPLIQUE A SITUAÇÃO]. Realizado o contato com o cliente [NOME], no dia [DATA/HORA]."
)

// fields builds required field definitions, deriving each key from its label.
func fields(n *token.Normalizer, labels ...string) []FieldDefinition {
	out := make([]FieldDefinition, 0, len(labels))
	for _, label := range labels {
		if label == "" {
			continue
		}
		out = append(out, FieldDefinition{Key: n.Normalize(label).Name, Label: label, Required: true})
	}
	return out
}

func standard(template string) []TemplateVariant {
	return []TemplateVariant{{ID: "padrao", Label: "Padrão", Template: template}}
}

// Builtin returns the default catalog of 23 no-show reasons.
func Builtin(n *token.Normalizer) *Catalog {
	c, err := New(builtinEntries(n))
	if err != nil {
		// The built-in entries are static; a failure here is a programming error.
		panic(err)
	}
	return c
}

func builtinEntries(n *token.Normalizer) []ReasonEntry {
	return []ReasonEntry{
		{
			ID:     "alteracao_tipo_servico",
			Title:  "Alteração do tipo de serviço – De assistência para reinstalação",
			Action: "Inserir ação no histórico da OS e entrar em contato com a central para cancelamento",
			Usage:  "Quando durante a prestação de serviço o técnico identificar a necessidade de realizar outro tipo de execução.",
			Examples: []string{
				"1) A OS está como assistência, mas será necessário fazer uma Reinstalação. Cliente voltará no dia seguinte.",
				"2) Necessário uma reinstalação completa, sem tempo hábil para realizar o atendimento.",
			},
			Fields:   fields(n, "Descreber o Problema", "Cliente"),
			Variants: standard(maskRescheduleInformed),
		},
		{
			ID:     "improdutivo_ponto_fixo_movel",
			Title:  "Atendimento Improdutivo – Ponto Fixo/Móvel",
			Action: actionCancel,
			Usage:  "Quando o veículo está presente mas não foi possível atender (problema mecânico, elétrico ou condição do veículo). Se ponto móvel, considere também quando o atendimento em campo não pôde ser feito por fatores externos (chuva ou local sem condição).",
			Examples: []string{
				"1) O cliente trouxe o veículo, ele compareceu para atendimento, mas o veículo apresentou falhas elétrica.",
				"2) O local para atendimento não possuía cobertura para atendimento. (chuva, etc.).",
			},
			Fields:   fields(n, "Descreber o Problema"),
			Variants: standard("Veículo compareceu para atendimento, porém por [DESCREVER O PROBLEMA], não foi possível realizar o serviço."),
		},
		{
			ID:     "pedido_cliente",
			Title:  "Cancelada a Pedido do Cliente",
			Action: actionCancel,
			Usage:  "Quando o próprio cliente solicita o cancelamento do atendimento.",
			Examples: []string{
				"1) Cliente ligou pedindo para remarcar porque o motorista estaria em viagem, ou porque não chegaria a tempo, ou veículo está na oficina.",
				"2) Entramos em contato com o cliente para confirmar o atendimento ele disse que o veículo estará em viagem ou indisponível.",
			},
			Fields:   fields(n, "Nome", "Canal", "Data", "Hora"),
			Variants: standard("Cliente [NOME], contato via [CANAL] em [DATA/HORA], informou indisponibilidade para o atendimento."),
		},
		{
			ID:       "pedido_rt",
			Title:    "Cancelamento a pedido da RT",
			Action:   actionCancel,
			Usage:    "Quando houver necessidade de cancelamento por parte do representante técnico.",
			Examples: []string{"Devido a situações de atendimento, precisamos cancelar com o cliente."},
			Fields:   fields(n, "Descreber o Problema", "Nome", "Data", "Hora"),
			Variants: standard("Não foi possível realizar o atendimento devido [DESCREVA O PROBLEMA]. Cliente [NOME] em [DATA/HORA], foi informado sobre a necessidade de reagendamento."),
		},
		{
			ID:     "cronograma_substituicao_placa",
			Title:  "Cronograma de Instalação/Substituição de Placa",
			Action: actionCancel,
			Usage:  "Quando o atendimento faz parte de cronograma especial pré-acordado / operação especial.",
			Examples: []string{
				"1) Cliente substituiu por essa OS 462270287.",
				"2) Operação especial, sem envio de veículo como substituição.",
			},
			// Only the "com_os" variant needs the work order number.
			Fields: []FieldDefinition{{Key: token.KeyWorkOrderNumber, Label: "Número OS"}},
			Variants: []TemplateVariant{
				{
					ID:            "com_os",
					Label:         "Substituição com OS",
					ExtraRequired: []string{token.KeyWorkOrderNumber},
					Template:      "Realizado atendimento com substituição de placa. Foi realizado a alteração pela OS [NÚMERO ORDEM DE SERVIÇO].",
				},
				{
					ID:       "sem_os",
					Label:    "Operação especial (sem envio de veículo)",
					Template: "Cliente não enviou veículo para atendimento.",
				},
			},
		},
		{
			ID:     "erro_cliente_desconhecia",
			Title:  "Erro De Agendamento - Cliente desconhecia o agendamento",
			Action: actionCancel,
			Usage:  "OS foi agendada sem que o cliente tivesse sido informado previamente, resultando em ausência ou recusa no momento do atendimento técnico. Obrigatório informar: Nome do cliente que entrou em contato, horário do cancelamento e canal de contato (preferencialmente canal que seja possível a futura comprovação).",
			Examples: []string{
				"1) Técnico chegou e o cliente disse não ter solicitado nenhum serviço ou foi entrado em contato com o cliente e o mesmo informou que desconhecia o agendamento.",
				"2) Realizamos contato com o cliente ele informou que desconhecia o agendamento.",
			},
			Fields:   fields(n, "Nome Cliente", "Data", "Hora"),
			Variants: standard("Em contato com o cliente o mesmo informou que desconhecia o agendamento. Nome cliente: [NOME CLIENTE] / Data contato: [DATA/HORA]."),
		},
		{
			ID:       "erro_endereco_incorreto",
			Title:    "Erro de Agendamento – Endereço incorreto",
			Action:   actionCancel,
			Usage:    "Endereço informado na OS está incorreto ou incompleto, inviabilizando a chegada ao local para execução do serviço.",
			Examples: []string{"Técnico direcionado para rua X, mas cliente está na rua Y, inviabilizando o atendimento."},
			Fields:   fields(n, "Tipo erro", "Descreva", "Nome", "Data", "Hora"),
			Variants: standard("Erro identificado no agendamento: [TIPO]. Situação: [DESCREVA]. Cliente [NOME] informado em [DATA/HORA]."),
		},
		{
			ID:       "erro_falta_info_os",
			Title:    "Erro de Agendamento – Falta de informações na O.S.",
			Action:   actionCancel,
			Usage:    "OS criada com informações incompletas, como ausência de dados do cliente, tipo de serviço ou outros campos obrigatórios que inviabilizam o atendimento.",
			Examples: []string{"Não há solução cadastrada no sistema."},
			Fields:   fields(n, "Tipo erro", "Explique", "Nome", "Data", "Hora"),
			Variants: standard(maskSchedulingError),
		},
		{
			ID:     "erro_os_incorreta",
			Title:  "Erro de Agendamento – O.S. agendada incorretamente (tipo/motivo/produto)",
			Action: actionCancel,
			Usage:  "Erro na categorização do serviço ao agendar a OS (ex: tipo de atendimento ou produto incorreto), levando à impossibilidade de execução correta.",
			Examples: []string{
				"1) Cliente pediu assistência e foi agendada instalação por engano.",
				"2) Agendamento no mesmo dia sem autorização.",
			},
			Fields:   fields(n, "Tipo erro", "Explique", "Nome", "Data", "Hora"),
			Variants: standard(maskSchedulingError),
		},
		{
			ID:       "erro_roteirizacao_movel",
			Title:    "Erro de roteirização do agendamento - Atendimento móvel",
			Action:   actionCancel,
			Usage:    "Quando houver uma falha no agendamento, e permite que o cliente consiga fazer agendamento no portal do cliente de um dia para o outro ou no mesmo dia, sem considerar o deslocamento.",
			Examples: []string{"Deslocamento de retorno não considerado, técnico sem tempo hábil para execução, comercial informado."},
			Fields:   fields(n, "Descreber o Problema", "Cliente", "Data", "Hora", "Especialista", "Data", "Hora"),
			Variants: standard("Não foi possível concluir o atendimento devido [DESCREVA O PROBLEMA]. Cliente [NOME] às [DATA/HORA] foi informado sobre a necessidade de reagendamento. Especialista [ESPECIALISTA] informado às [DATA/HORA 2]."),
		},
		{
			ID:       "falta_acessorios_imobilizado",
			Title:    "Falta De Equipamento - Acessórios Imobilizado",
			Action:   actionCancel,
			Usage:    "Falta de acessórios que estão alocados (imobilizados) em outro atendimento, impedindo a realização do serviço agendado.",
			Examples: []string{"Agendamento precisara ser cancelado, pois estamos sem o sensor temperatura NTC 10K , o mesmo foi pedido para a distribuição mas ainda não chegou."},
			Fields:   fields(n, "Item", "Cliente", "Data", "Hora"),
			Variants: standard(maskMissingEquipment),
		},
		{
			ID:       "falta_item_reservado_incompativel",
			Title:    "Falta De Equipamento - Item Reservado Não Compatível",
			Action:   actionCancel,
			Usage:    "Material reservado está incompatível com o veículo ou serviço solicitado, mesmo estando disponível no estoque.",
			Examples: []string{"Instalação não concluída por falta de rastreador compatível."},
			Fields:   fields(n, "Item", "Cliente", "Data", "Hora"),
			Variants: standard(maskMissingEquipment),
		},
		{
			ID:       "falta_material",
			Title:    "Falta De Equipamento - Material",
			Action:   actionCancel,
			Usage:    "Ausência total de material necessário para a execução da OS, mesmo após verificação de estoque.",
			Examples: []string{"Falta equipamento ADPLUS."},
			Fields:   fields(n, "Item", "Cliente", "Data", "Hora"),
			Variants: standard(maskMissingEquipment),
		},
		{
			ID:     "falta_principal",
			Title:  "Falta De Equipamento - Principal",
			Action: actionCancel,
			Usage:  "Atendimento foi marcado, mas o técnico não tinha consigo o equipamento principal necessário, mesmo estando previsto para o serviço.",
			Examples: []string{
				"1) RT Com falta de equipamento LMU4233.",
				"2) Aguardando o equipamento RFID.",
			},
			Fields:   fields(n, "Item", "Cliente", "Data", "Hora"),
			Variants: standard(maskMissingEquipment),
		},
		{
			ID:       "instabilidade_sistema",
			Title:    "Instabilidade de Equipamento/Sistema",
			Action:   "Contatar a central para conclusão; se não possível, registrar ação com nº da ASM.",
			Usage:    "Quando deu problema no sistema ou no equipamento e não foi possível terminar o serviço.",
			Examples: []string{"Rastreador não iniciou comunicação com a plataforma."},
			// date/hour pairs 1 and 2 feed [DATA/HORA] and [DATA/HORA 2]; the third date is the test date.
			Fields:   fields(n, "Data", "Hora", "Equipamento/Sistema", "Data", "Hora", "Data", "ASM"),
			Variants: standard("Atendimento finalizado em [DATA/HORA] não concluído devido à instabilidade de [EQUIPAMENTO/SISTEMA]. Registrado teste/reinstalação em [DATA 3]. Realizado contato com a central [DATA/HORA 2] e foi gerada a ASM [NÚMERO]."),
		},
		{
			ID:       "no_show_cliente",
			Title:    "No-show Cliente – Ponto Fixo/Móvel",
			Action:   actionCancel,
			Usage:    "Quando o cliente não aparece no local/empresa (fixo) ou não está disponível no ponto móvel.",
			Examples: []string{"O técnico chegou ao cliente, mas o caminhão estava em rota de viagem, o veículo não compareceu no ponto de atendimento, o veículo chegou com atraso superior a 15 minutos."},
			Fields:   fields(n, "Hora"),
			Variants: standard("Cliente não compareceu para atendimento até às [HORA]."),
		},
		{
			ID:       "no_show_tecnico",
			Title:    "No-show Técnico",
			Action:   actionCancel,
			Usage:    "Quando o técnico não comparece no horário/local.",
			Examples: []string{"Técnico não realizou o atendimento."},
			Fields:   fields(n, "Nome Técnico", "Data", "Hora", "Motivo"),
			Variants: standard("Técnico [NOME TÉCNICO], em [DATA/HORA], não realizou o atendimento por motivo de [MOTIVO]."),
		},
		{
			ID:       "oc_tecnico_impossivel",
			Title:    "Ocorrência com Técnico – Não foi possível realizar atendimento",
			Action:   actionCancel,
			Usage:    "Quando o técnico não consegue realizar o atendimento por questões pessoais ou operacionais, como: Problemas de saúde e pessoais; Problemas no veículo do técnico ou acidentes, ou outras impossibilidades de comparecer ao local. Deve ser informar horário, nome do cliente e canal de contato (voz, e-mail, whatsapp) que foi informado o cliente sobre a impossibilidade de atendimento.",
			Examples: []string{"Técnico não se sentiu bem e teve que se ausentar na tarde de hoje."},
			Fields:   fields(n, "Descreber o Problema", "Nome"),
			Variants: standard(maskRescheduleInformed),
		},
		{
			ID:       "oc_tecnico_parcial",
			Title:    "Ocorrência Com Técnico - Sem Tempo Hábil Para Realizar O Serviço (Atendimento Parcial)",
			Action:   actionCancel,
			Usage:    "Quando iniciado o atendimento, porém foi identificado que não será possível concluir o serviço.",
			Examples: []string{"Técnico começou a realizar o serviço e não conseguiu finalizar o atendimento no mesmo dia."},
			Fields:   fields(n, "Descreber o Problema", "Cliente", "Data", "Hora"),
			Variants: standard(maskRescheduleAtDateTime),
		},
		{
			ID:       "oc_tecnico_nao_iniciado",
			Title:    "Ocorrência Com Técnico - Sem Tempo Hábil Para Realizar O Serviço (Não iniciado)",
			Action:   actionCancel,
			Usage:    "Quando não houve tempo suficiente por erro de agendamento, encaixe, atraso em OS anterior ou roteirização ruim e o atendimento não foi iniciado.",
			Examples: []string{"Atendimento anterior demorou muito mais que o previsto e inviabilizou o próximo."},
			Fields:   fields(n, "Motivo", "Cliente"),
			Variants: standard("Motivo: [ERRO DE AGENDAMENTO/ENCAIXE] ou [DEMANDA EXCEDIDA]. Cliente [NOME] informado do reagendamento."),
		},
		{
			ID:       "oc_tecnico_sem_habilidade",
			Title:    "Ocorrência Com Técnico - Técnico Sem Habilidade Para Realizar Serviço",
			Action:   actionCancel,
			Usage:    "Quando o representante técnico identifica que o atendimento não pode ser realizado, devido a falta de habilidade específica do técnico.",
			Examples: []string{"Atendimento roteirizado na agenda do técnico instalador sem a habilidade necessária para a realização do serviço"},
			Fields:   fields(n, "Descreber o Problema", "Cliente"),
			Variants: standard(maskRescheduleInformed),
		},
		{
			ID:       "perda_extravio_defeito",
			Title:    "Perda/Extravio/Falta Do Equipamento/Equipamento Com Defeito",
			Action:   actionCancel,
			Usage:    "Quando o técnico identifica que o equipamento/acessório não está mais no veículo ou por falta de condições de mau uso não é possível realizar o atendimento, e o cliente se recusa a assinar o termo de cobrança.",
			Examples: []string{"Veículo esta no local mas não tem todos os equipamentos, novo proprietário não aceitou assinar o termo de Mau Uso."},
			Fields:   fields(n, "Descreber o Problema"),
			Variants: standard("Não foi possível realizar o atendimento, pois [DESCREVER PROBLEMA]. Cliente se recusou assinar termo."),
		},
		{
			ID:       "servico_incompativel_os",
			Title:    "Serviço incompatível com a OS aberta",
			Action:   actionCancel,
			Usage:    "Quando iniciado o atendimento, porém foi identificado que o equipamento/material separado não atende as necessidades para conclusão do serviço.",
			Examples: []string{"Técnico foi para atendimento, porém identificou que é necessário utilizar outro equipamento do que foi descrito como problema."},
			Fields:   fields(n, "Descreber o Problema", "Cliente", "Data", "Hora"),
			Variants: standard(maskRescheduleAtDateTime),
		},
	}
}
