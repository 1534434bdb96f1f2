package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	message.SetString(lang, "app.title", "Diretório de Funcionários")
	message.SetString(lang, "nav.lang_en", "English")
	message.SetString(lang, "nav.lang_pt_br", "Português (Brasil)")

	message.SetString(lang, "employees.title", "Funcionários")
	message.SetString(lang, "employees.search", "Buscar funcionários")
	message.SetString(lang, "employees.search_submit", "Buscar")
	message.SetString(lang, "employees.add_new", "Adicionar")
	message.SetString(lang, "employees.reload", "Recarregar")
	message.SetString(lang, "employees.empty", "Nenhum funcionário para mostrar.")
	message.SetString(lang, "employees.col.full_name", "Nome")
	message.SetString(lang, "employees.col.address", "Endereço")
	message.SetString(lang, "employees.col.phone_number", "Telefone")
	message.SetString(lang, "employees.col.email", "E-mail")
	message.SetString(lang, "employees.col.actions", "Ações")
	message.SetString(lang, "employees.action.edit", "Editar")
	message.SetString(lang, "employees.action.delete", "Excluir")
	message.SetString(lang, "employees.sort.asc", "ordem crescente")
	message.SetString(lang, "employees.sort.desc", "ordem decrescente")

	message.SetString(lang, "employees.pagination.rows_per_page", "Linhas por página:")
	message.SetString(lang, "employees.pagination.apply", "Aplicar")
	message.SetString(lang, "employees.pagination.range", "%d-%d de %d")
	message.SetString(lang, "employees.pagination.prev", "Página anterior")
	message.SetString(lang, "employees.pagination.next", "Próxima página")

	message.SetString(lang, "employees.form.title", "Ficha do Funcionário")
	message.SetString(lang, "employees.form.full_name", "Nome completo")
	message.SetString(lang, "employees.form.address", "Endereço")
	message.SetString(lang, "employees.form.phone_number", "Telefone")
	message.SetString(lang, "employees.form.email", "E-mail")
	message.SetString(lang, "employees.form.submit", "Enviar")
	message.SetString(lang, "employees.form.reset", "Limpar")
	message.SetString(lang, "employees.form.close", "Fechar")

	message.SetString(lang, "employees.confirm.title", "Tem certeza?")
	message.SetString(lang, "employees.confirm.subtitle", "Isso não pode ser desfeito!")
	message.SetString(lang, "employees.confirm.yes", "Sim")
	message.SetString(lang, "employees.confirm.no", "Não")

	message.SetString(lang, "employees.notice.created", "%s foi adicionado(a).")
	message.SetString(lang, "employees.notice.updated", "%s foi atualizado(a).")
	message.SetString(lang, "employees.notice.deleted", "Funcionário excluído.")
	message.SetString(lang, "employees.notice.reloaded", "Diretório recarregado.")

	message.SetString(lang, "error.users_unavailable", "O serviço de usuários está inacessível. Tente novamente em instantes.")
	message.SetString(lang, "error.users_rejected", "O serviço de usuários recusou a requisição.")
	message.SetString(lang, "error.unexpected_response", "O serviço de usuários retornou uma resposta inesperada.")
	message.SetString(lang, "error.duplicate_id", "Já existe um funcionário com este id.")
	message.SetString(lang, "error.employee_not_found", "Funcionário não encontrado.")
	message.SetString(lang, "error.invalid_order_by", "Essa coluna não pode ser ordenada.")
	message.SetString(lang, "error.invalid_query", "Não foi possível ler a página, o tamanho ou a ordenação.")
	message.SetString(lang, "error.invalid_form", "Não foi possível ler a ficha do funcionário.")
	message.SetString(lang, "error.form_closed", "A ficha do funcionário não está aberta.")
	message.SetString(lang, "error.delete_not_confirmed", "Nada aguardando confirmação.")
	message.SetString(lang, "error.page.title", "Algo deu errado")
	message.SetString(lang, "error.page.not_found", "Página não encontrada")
	message.SetString(lang, "error.page.back", "Voltar aos funcionários")
}
